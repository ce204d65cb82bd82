package apperror

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("missing")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(BadRequest("nope")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Internal("boom", nil)))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("unclassified")))
}

func TestStatusOfWrapped(t *testing.T) {
	err := errors.Wrap(NotFound("missing"), "while looking up")
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	assert.True(t, IsNotFound(err))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "missing", MessageOf(NotFound("missing")))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Internal("storage failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "storage failed")
	assert.Contains(t, err.Error(), "disk on fire")
}
