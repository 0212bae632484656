package muxhandlers

import "net/http"

// MiddlewareFunc wraps an http.Handler with additional behaviour.
type MiddlewareFunc func(http.Handler) http.Handler

// Middleware allows MiddlewareFunc to be used where a middleware interface
// value is expected.
func (mw MiddlewareFunc) Middleware(handler http.Handler) http.Handler {
	return mw(handler)
}

// Chain wraps h with mws. The first middleware is the outermost one.
func Chain(h http.Handler, mws ...MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	return h
}
