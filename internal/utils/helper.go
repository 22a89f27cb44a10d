package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	appErrors "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
)

// ParseID reads a positive integer path parameter.
func ParseID(r *http.Request, key string) (int64, error) {
	raw := r.PathValue(key)

	if raw == "" {
		return 0, appErrors.BadRequestError(fmt.Sprintf("Missing %s in path", key))
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		// a malformed id can never resolve to a row
		return 0, appErrors.NotFoundError(fmt.Sprintf("Invalid %s: %s", key, raw))
	}

	return id, nil
}

type PageParams struct {
	Offset int
	Limit  int
}

// ParsePageParams reads offset and limit from the query string, falling back
// to defaultLimit and clamping to maxLimit.
func ParsePageParams(r *http.Request, defaultLimit, maxLimit int) PageParams {
	q := r.URL.Query()

	offset, err := strconv.Atoi(q.Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return PageParams{Offset: offset, Limit: limit}
}

// PageLinksFor builds self/prev/next links for a page of a listing with
// total entries.
func PageLinksFor(r *http.Request, total int, p PageParams) models.PageLinks {
	links := models.PageLinks{
		Self: models.Link{Href: pageURL(r, p.Offset, p.Limit)},
	}

	if p.Offset > 0 {
		prev := max(p.Offset-p.Limit, 0)
		links.Prev = &models.Link{Href: pageURL(r, prev, p.Limit)}
	}

	if p.Offset+p.Limit < total {
		links.Next = &models.Link{Href: pageURL(r, p.Offset+p.Limit, p.Limit)}
	}

	return links
}

// Paginate wraps items with offset/limit metadata and links.
func Paginate(r *http.Request, items any, total int, p PageParams) models.PaginatedResponse {
	return models.PaginatedResponse{
		Data:   items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
		Links:  PageLinksFor(r, total, p),
	}
}

func pageURL(r *http.Request, offset, limit int) string {
	q := url.Values{}
	for k, v := range r.URL.Query() {
		q[k] = v
	}

	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	return r.URL.Path + "?" + q.Encode()
}
