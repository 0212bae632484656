package muxhandlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/vitalvas/weburl/uribuilder"
)

// ErrInvalidBaseURL is returned when BaseURLConfig.BaseURL does not start
// and end with "/".
var ErrInvalidBaseURL = errors.New("base url: must start and end with \"/\"")

// BaseURLConfig configures the BaseURL middleware behaviour.
type BaseURLConfig struct {
	// BaseURL is the directory the application is mounted under, with
	// leading and trailing slashes (e.g. "/app/"). Defaults to "/".
	BaseURL string
}

// BaseURLMiddleware returns a middleware for applications mounted below a
// base URL.
//
// Before the request is handled, the base URL is removed from the request
// path so handlers see paths relative to the application root. When the
// handler responds with a Location header holding a relative-path reference
// (no scheme, no authority, no leading slash), the base URL is prefixed to
// it before the header is written.
//
// It returns ErrInvalidBaseURL if the base URL is malformed.
func BaseURLMiddleware(cfg BaseURLConfig) (MiddlewareFunc, error) {
	base := cfg.BaseURL
	if base == "" {
		base = "/"
	}

	if !strings.HasPrefix(base, "/") || !strings.HasSuffix(base, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, base)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if base != "/" {
				r = withoutBaseURL(r, base)
			}

			bw := &baseURLResponseWriter{
				ResponseWriter: w,
				base:           base,
			}

			next.ServeHTTP(bw, r)

			// Headers set without an explicit write are flushed by the
			// server after the handler returns.
			if !bw.wroteHeader {
				bw.rewriteLocation()
			}
		})
	}, nil
}

// withoutBaseURL returns a shallow copy of r with base removed from the
// path. Requests outside base are returned unchanged.
func withoutBaseURL(r *http.Request, base string) *http.Request {
	escaped := r.URL.EscapedPath()

	rest, ok := strings.CutPrefix(escaped, base)
	if !ok {
		if escaped != strings.TrimSuffix(base, "/") {
			return r
		}

		rest = ""
	}

	p, err := url.PathUnescape("/" + rest)
	if err != nil {
		return r
	}

	r2 := new(http.Request)
	*r2 = *r
	r2.URL = new(url.URL)
	*r2.URL = *r.URL
	r2.URL.Path = p
	r2.URL.RawPath = ""

	if r2.URL.EscapedPath() != "/"+rest {
		r2.URL.RawPath = "/" + rest
	}

	return r2
}

// baseURLResponseWriter rewrites a relative Location header before the
// response headers are flushed.
type baseURLResponseWriter struct {
	http.ResponseWriter
	base        string
	wroteHeader bool
}

func (bw *baseURLResponseWriter) WriteHeader(statusCode int) {
	if bw.wroteHeader {
		return
	}

	bw.wroteHeader = true
	bw.rewriteLocation()
	bw.ResponseWriter.WriteHeader(statusCode)
}

func (bw *baseURLResponseWriter) Write(b []byte) (int, error) {
	if !bw.wroteHeader {
		bw.WriteHeader(http.StatusOK)
	}

	return bw.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter for middleware compatibility.
func (bw *baseURLResponseWriter) Unwrap() http.ResponseWriter {
	return bw.ResponseWriter
}

func (bw *baseURLResponseWriter) rewriteLocation() {
	h := bw.Header()

	location := h.Get("Location")
	if location == "" {
		return
	}

	u, err := uribuilder.Parse(location)
	if err != nil || !uribuilder.IsRelativePathReference(u) {
		return
	}

	h.Set("Location", bw.base+location)
}
