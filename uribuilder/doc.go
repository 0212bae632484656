// Package uribuilder resolves URI references against a base URI and
// computes relative references between URIs.
//
// Resolution follows RFC 3986 Section 5.2: the target inherits whatever
// components it lacks from the base, and dot segments in the merged path are
// removed per Section 5.2.4. Relativize is the inverse: it returns the
// shortest reference that resolves back to the target.
//
//	base, _ := uribuilder.Parse("https://example.com/docs/guide/intro")
//	b := uribuilder.New(base)
//
//	u, _ := b.Build("../api", false) // "/docs/api"
//	u, _ = b.Build("../api", true)   // "https://example.com/docs/api"
//
//	r, _ := b.Relativize("https://example.com/docs/guide/setup#install")
//	r.String() // "setup#install"
//
// Build strips the scheme and authority from working copies of both URIs
// unless absolute output is requested, so the result is host-relative.
// The stored base is never modified.
//
// Values of *url.URL from net/url are used as the URI type throughout.
package uribuilder
