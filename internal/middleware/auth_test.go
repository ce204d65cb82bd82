package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityRouter(secret []byte) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var actor string
	router := gin.New()
	router.Use(Identity(secret))
	router.GET("/whoami", func(c *gin.Context) {
		actor = CurrentActor(c)
		c.Status(http.StatusOK)
	})
	return router, &actor
}

func TestCurrentActorFromBearerToken(t *testing.T) {
	secret := []byte("s3cret")
	router, actor := identityRouter(secret)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "alice"}).SignedString(secret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "alice", *actor)
}

func TestCurrentActorFallsBackToSystem(t *testing.T) {
	router, actor := identityRouter([]byte("s3cret"))

	// No token at all.
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, SystemActor, *actor)

	// Garbage token never rejects the request; it just stays anonymous.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, SystemActor, *actor)
}
