package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// pathID parses the {id} URL parameter. A malformed id cannot name any
// stored row, so it is reported as not found.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

// queryBool reads a 0/1 or true/false flag. Anything else is false.
func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get(name)))
	return err == nil && v
}

// pager turns page/limit query parameters into page requests and renders
// paginated envelopes with absolute next/previous links.
type pager struct {
	cfg     config.PaginationConfig
	baseURL string
}

// page parses ?page and ?limit. A non-numeric or non-positive page is
// invalid; a bad limit falls back to the default size, a large one is capped.
func (p pager) page(r *http.Request) (domain.PageRequest, error) {
	q := r.URL.Query()

	number := 1
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return domain.PageRequest{}, errInvalidPage
		}
		number = n
	}

	size := p.cfg.DefaultPageSize
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		size = min(n, p.cfg.MaxPageSize)
	}
	return domain.PageRequest{Page: number, Size: size}, nil
}

type pageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// envelope wraps results of the requested page. A page past the last one is
// invalid unless it is the first page of an empty listing.
func envelope[T any](p pager, r *http.Request, req domain.PageRequest, total int, results []T) (pageResponse[T], error) {
	if req.Page > 1 && req.Offset() >= total {
		return pageResponse[T]{}, errInvalidPage
	}
	resp := pageResponse[T]{Count: total, Results: results}
	if req.Offset()+req.Size < total {
		next := p.pageURL(r, req.Page+1)
		resp.Next = &next
	}
	if req.Page > 1 {
		prev := p.pageURL(r, req.Page-1)
		resp.Previous = &prev
	}
	return resp, nil
}

// pageURL rewrites the request URL to point at another page. The first page
// is addressed without a page parameter.
func (p pager) pageURL(r *http.Request, page int) string {
	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u := url.URL{Path: r.URL.Path, RawQuery: q.Encode()}
	return absoluteBase(p.baseURL, r) + u.String()
}

// absoluteBase returns the configured public URL or, when none is set, the
// scheme and host the request arrived on.
func absoluteBase(publicURL string, r *http.Request) string {
	if publicURL != "" {
		return strings.TrimRight(publicURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host
}
