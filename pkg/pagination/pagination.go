package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	DefaultPage  = 0 // zero-based at the HTTP boundary
	DefaultLimit = 10
	MaxLimit     = 100
)

// ErrNegativePage is returned when the caller asks for a page below zero.
var ErrNegativePage = errors.New("page must not be negative")

// Params holds validated pagination parameters. Page stays zero-based here;
// the service's pagination is one-based and handlers convert before calling it.
type Params struct {
	Page  int
	Limit int
}

// Parse extracts page/limit from query parameters, applying defaults and the
// limit cap. A negative page is the caller's error and is not silently fixed.
func Parse(c *gin.Context) (Params, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil {
		page = DefaultPage
	}
	if page < 0 {
		return Params{}, ErrNegativePage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}, nil
}

// Meta carries the page bookkeeping computed by the storage pagination.
type Meta struct {
	TotalItems   int64 `json:"totalItems"`
	ItemCount    int   `json:"itemCount"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
}

// NewMeta computes page metadata for a one-based page number.
func NewMeta(total int64, itemCount, limit, page int) Meta {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return Meta{
		TotalItems:   total,
		ItemCount:    itemCount,
		ItemsPerPage: limit,
		TotalPages:   totalPages,
		CurrentPage:  page,
	}
}
