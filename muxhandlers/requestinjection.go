package muxhandlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vitalvas/weburl/httpreq"
)

type requestKey struct{}

// RequestFromContext returns the request stored in the context by
// RequestInjectionMiddleware.
func RequestFromContext(ctx context.Context) (*httpreq.Request, bool) {
	req, ok := ctx.Value(requestKey{}).(*httpreq.Request)
	return req, ok
}

// RequestIDFromContext returns the ID of the request stored in the context
// by RequestInjectionMiddleware. Returns an empty string if no request is
// present.
func RequestIDFromContext(ctx context.Context) string {
	if req, ok := RequestFromContext(ctx); ok {
		return req.ID()
	}

	return ""
}

// RequestInjectionConfig configures the RequestInjection middleware
// behaviour.
type RequestInjectionConfig struct {
	// Directory is the base directory of the application, used as the
	// directory of the request URL value. Defaults to "/".
	Directory string

	// HeaderName overrides the header used to propagate the request ID.
	// Defaults to "X-Request-ID" when empty.
	HeaderName string

	// GenerateFunc is an optional callback that returns a new unique ID.
	// Defaults to GenerateUUIDv4.
	GenerateFunc func(r *http.Request) string

	// TrustIncoming, when true, reuses an existing request ID from the
	// incoming request header instead of generating a new one.
	TrustIncoming bool

	// LogFunc is an optional callback invoked when the request cannot be
	// interpreted. The client receives 400 Bad Request.
	LogFunc func(r *http.Request, err error)
}

// RequestInjectionMiddleware returns a middleware that interprets each
// incoming request into an httpreq.Request and injects it into the request
// context, where handlers retrieve it with RequestFromContext.
//
// Every injected request carries an ID, which is also set on the request
// and response headers.
func RequestInjectionMiddleware(cfg RequestInjectionConfig) MiddlewareFunc {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = "X-Request-ID"
	}

	generate := cfg.GenerateFunc
	if generate == nil {
		generate = GenerateUUIDv4
	}

	directory := cfg.Directory
	trustIncoming := cfg.TrustIncoming
	logFunc := cfg.LogFunc

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if trustIncoming {
				id = r.Header.Get(headerName)
			}

			if id == "" {
				id = generate(r)
			}

			if id != "" {
				r.Header.Set(headerName, id)
				w.Header().Set(headerName, id)
			}

			req, err := httpreq.FromHTTPRequest(r, directory)
			if err != nil {
				if logFunc != nil {
					logFunc(r, err)
				}

				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

				return
			}

			req.SetID(id)

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestKey{}, req)))
		})
	}
}

// GenerateUUIDv4 returns a new UUID v4 string.
//
// See https://www.rfc-editor.org/rfc/rfc9562#section-5.4
func GenerateUUIDv4(_ *http.Request) string {
	return uuid.New().String()
}

// GenerateUUIDv7 returns a new UUID v7 string. UUIDs are time-ordered:
// IDs generated later sort lexicographically after earlier ones.
//
// See https://www.rfc-editor.org/rfc/rfc9562#section-5.7
func GenerateUUIDv7(_ *http.Request) string {
	return uuid.Must(uuid.NewV7()).String()
}
