package prism

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// Request is one upstream API call.
//
// Op is a dotted operation name (e.g. "crypto.price") used for logging,
// metrics, cache keys and test doubles. Path is relative to the client's
// base URL.
type Request struct {
	Op     string
	Method string
	Path   string
	Query  url.Values
	Body   any

	err error
}

// Get builds a GET request. Each segment is path-escaped.
func Get(op string, segments ...string) Request {
	return Request{Op: op, Method: http.MethodGet, Path: joinPath(segments)}
}

// Post builds a POST request carrying body as JSON.
func Post(op string, body any, segments ...string) Request {
	return Request{Op: op, Method: http.MethodPost, Path: joinPath(segments), Body: body}
}

// WithQuery encodes opts into the query string. opts is a struct using
// `url` tags (github.com/google/go-querystring); nil pointers and fields
// tagged omitempty are skipped.
func (r Request) WithQuery(opts any) Request {
	values, err := query.Values(opts)
	if err != nil {
		r.err = fmt.Errorf("%s: encode query: %w", r.Op, err)
		return r
	}

	merged := url.Values{}
	for k, v := range r.Query {
		merged[k] = append([]string(nil), v...)
	}
	for k, v := range values {
		merged[k] = append(merged[k], v...)
	}
	r.Query = merged
	return r
}

// Err reports a request construction failure.
func (r Request) Err() error {
	return r.err
}

// Identity is the method, path and encoded query of the request. Two requests
// with the same identity fetch the same resource.
func (r Request) Identity() string {
	id := r.Method + " " + r.Path
	if len(r.Query) > 0 {
		id += "?" + r.Query.Encode()
	}
	return id
}

func joinPath(segments []string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}
