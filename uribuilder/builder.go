package uribuilder

import "net/url"

// Builder builds URIs relative to a base URI. A Builder is not safe for
// concurrent modification; use Clone to derive a per-request copy.
type Builder struct {
	base     *url.URL
	absolute bool
}

// New returns a Builder for base. A nil base behaves like the empty URI.
func New(base *url.URL) *Builder {
	return &Builder{base: clone(base)}
}

// SetBaseURI replaces the base URI.
func (b *Builder) SetBaseURI(base *url.URL) {
	b.base = clone(base)
}

// BaseURI returns a copy of the base URI.
func (b *Builder) BaseURI() *url.URL {
	return clone(b.base)
}

// SetAbsolute controls whether Build keeps the scheme and authority when
// called with absolute set to false.
func (b *Builder) SetAbsolute(absolute bool) {
	b.absolute = absolute
}

// IsAbsolute reports whether Build produces absolute URIs by default.
func (b *Builder) IsAbsolute() bool {
	return b.absolute
}

// Clone returns an independent copy of b.
func (b *Builder) Clone() *Builder {
	return &Builder{base: clone(b.base), absolute: b.absolute}
}

// Build parses target and resolves it against the base URI. It returns an
// error wrapping ErrSyntax if target cannot be parsed.
func (b *Builder) Build(target string, absolute bool) (*url.URL, error) {
	ref, err := Parse(target)
	if err != nil {
		return nil, err
	}

	return b.BuildURI(ref, absolute), nil
}

// BuildURI resolves target against the base URI. Unless absolute output is
// requested, the scheme and authority are removed from both before
// resolution, producing a host-relative result.
func (b *Builder) BuildURI(target *url.URL, absolute bool) *url.URL {
	base := clone(b.base)
	ref := clone(target)

	if !absolute && !b.absolute {
		stripAuthority(base)
		stripAuthority(ref)
	}

	return Resolve(base, ref)
}

// Relativize parses target and returns the shortest reference to it from
// the base URI.
func (b *Builder) Relativize(target string) (*url.URL, error) {
	ref, err := Parse(target)
	if err != nil {
		return nil, err
	}

	return b.RelativizeURI(ref), nil
}

// RelativizeURI returns the shortest reference to target from the base URI.
func (b *Builder) RelativizeURI(target *url.URL) *url.URL {
	return Relativize(b.base, target)
}

func stripAuthority(u *url.URL) {
	u.Scheme = ""
	u.User = nil
	u.Host = ""
}
