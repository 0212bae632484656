package uribuilder

import (
	"net/url"
	"slices"
	"strings"
)

// Relativize returns the shortest reference that resolves to target against
// base. A target with a different scheme, or already relative, is returned
// unchanged. A target on another authority loses only its scheme.
func Relativize(base, target *url.URL) *url.URL {
	base = clone(base)
	t := clone(target)

	if t.Scheme != "" && (base.Scheme != t.Scheme || authority(t) == "" && authority(base) != "") {
		return t
	}

	if IsRelativePathReference(t) {
		return t
	}

	if ta := authority(t); ta != "" && ta != authority(base) {
		t.Scheme = ""
		return t
	}

	rel := &url.URL{
		RawQuery:    t.RawQuery,
		ForceQuery:  t.ForceQuery,
		Fragment:    t.Fragment,
		RawFragment: t.RawFragment,
	}

	if base.EscapedPath() != t.EscapedPath() {
		setEscapedPath(rel, relativePath(base, t))
		return rel
	}

	if base.RawQuery == t.RawQuery {
		rel.RawQuery, rel.ForceQuery = "", false
		return rel
	}

	// An empty path would inherit the base query on resolution.
	if !hasQuery(t) {
		p := t.EscapedPath()
		last := p[strings.LastIndexByte(p, '/')+1:]

		if last == "" {
			last = "./"
		}

		setEscapedPath(rel, last)
	}

	return rel
}

func relativePath(base, target *url.URL) string {
	src := strings.Split(base.EscapedPath(), "/")
	dst := strings.Split(target.EscapedPath(), "/")

	src = src[:len(src)-1]
	last := dst[len(dst)-1]
	dst = dst[:len(dst)-1]

	n := 0
	for n < len(src) && n < len(dst) && src[n] == dst[n] {
		n++
	}

	rel := strings.Repeat("../", len(src)-n) + strings.Join(slices.Concat(dst[n:], []string{last}), "/")

	// An empty reference, a first segment with a colon (read as a scheme)
	// or a leading slash (read as absolute) needs a "./" prefix.
	first, _, _ := strings.Cut(rel, "/")

	switch {
	case rel == "" || strings.Contains(first, ":"):
		rel = "./" + rel
	case rel[0] == '/':
		if authority(base) != "" && base.EscapedPath() == "" {
			rel = "." + rel
		} else {
			rel = "./" + rel
		}
	}

	return rel
}
