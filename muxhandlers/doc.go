// Package muxhandlers provides HTTP middleware that prepares requests for
// URL-aware handlers.
//
// # Base URL Middleware
//
// BaseURLMiddleware mounts an application under a directory. The directory
// is stripped from the request path before routing, and relative Location
// headers set by handlers are prefixed with it.
//
//	mw, err := muxhandlers.BaseURLMiddleware(muxhandlers.BaseURLConfig{
//	    BaseURL: "/app/",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Request Injection Middleware
//
// RequestInjectionMiddleware interprets every request into an
// httpreq.Request carrying a URL value, language, ID, form values, headers,
// cookies and uploaded files. Handlers retrieve it with RequestFromContext.
//
//	mw := muxhandlers.RequestInjectionMiddleware(muxhandlers.RequestInjectionConfig{
//	    Directory:    "/app/",
//	    GenerateFunc: muxhandlers.GenerateUUIDv7,
//	})
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    req, _ := muxhandlers.RequestFromContext(r.Context())
//	    fmt.Fprintln(w, req.Path(), req.Language())
//	}
//
// # Forwarded Origin Middleware
//
// ForwardedOriginMiddleware applies X-Forwarded-Proto and X-Forwarded-Host
// from trusted proxies, so URLs built for the request use the public
// scheme and host. Place it before RequestInjectionMiddleware.
//
//	origin, err := muxhandlers.ForwardedOriginMiddleware(muxhandlers.ForwardedOriginConfig{
//	    TrustedProxies: []string{"10.0.0.0/8"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	handler := muxhandlers.Chain(router, origin, mw)
package muxhandlers
