package uribuilder

import (
	"net/url"
	"strings"
)

// Resolve resolves ref against base per RFC 3986 Section 5.2.2. A nil base
// is treated as the empty URI. Neither argument is modified.
func Resolve(base, ref *url.URL) *url.URL {
	base = clone(base)
	if ref == nil || ref.String() == "" {
		return base
	}

	if ref.Scheme != "" {
		t := clone(ref)
		setEscapedPath(t, removeDotSegments(ref.EscapedPath()))

		return t
	}

	t := &url.URL{Scheme: base.Scheme}

	switch refPath := ref.EscapedPath(); {
	case hasAuthority(ref):
		t.User, t.Host = ref.User, ref.Host
		setEscapedPath(t, removeDotSegments(refPath))
		copyQuery(t, ref)
	case refPath == "":
		t.User, t.Host = base.User, base.Host
		setEscapedPath(t, base.EscapedPath())

		if hasQuery(ref) {
			copyQuery(t, ref)
		} else {
			copyQuery(t, base)
		}
	default:
		t.User, t.Host = base.User, base.Host

		if refPath[0] != '/' {
			refPath = mergePaths(base, refPath)
		}

		setEscapedPath(t, removeDotSegments(refPath))
		copyQuery(t, ref)
	}

	t.Fragment, t.RawFragment = ref.Fragment, ref.RawFragment

	return t
}

// IsRelativePathReference reports whether u has no scheme, no authority and
// a path that does not start with "/".
func IsRelativePathReference(u *url.URL) bool {
	if u.Scheme != "" || hasAuthority(u) {
		return false
	}

	p := u.EscapedPath()

	return p == "" || p[0] != '/'
}

// mergePaths implements RFC 3986 Section 5.2.3.
func mergePaths(base *url.URL, ref string) string {
	basePath := base.EscapedPath()
	if hasAuthority(base) && basePath == "" {
		return "/" + ref
	}

	i := strings.LastIndexByte(basePath, '/')
	if i < 0 {
		return ref
	}

	return basePath[:i+1] + ref
}

// removeDotSegments implements RFC 3986 Section 5.2.4.
func removeDotSegments(p string) string {
	if p == "" || p == "/" {
		return p
	}

	segments := strings.Split(p, "/")
	out := make([]string, 0, len(segments))

	for _, seg := range segments {
		switch seg {
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case ".":
		default:
			out = append(out, seg)
		}
	}

	np := strings.Join(out, "/")
	last := segments[len(segments)-1]

	switch {
	case p[0] == '/' && !strings.HasPrefix(np, "/"):
		np = "/" + np
	case np != "" && (last == "." || last == ".."):
		np += "/"
	}

	return np
}

func hasAuthority(u *url.URL) bool {
	return u.Host != "" || u.User != nil
}

func hasQuery(u *url.URL) bool {
	return u.RawQuery != "" || u.ForceQuery
}

func authority(u *url.URL) string {
	if u.User != nil {
		return u.User.String() + "@" + u.Host
	}

	return u.Host
}

func copyQuery(dst, src *url.URL) {
	dst.RawQuery, dst.ForceQuery = src.RawQuery, src.ForceQuery
}

// setEscapedPath stores an already escaped path, keeping RawPath only when
// it differs from the default encoding.
func setEscapedPath(u *url.URL, escaped string) {
	p, err := url.PathUnescape(escaped)
	if err != nil {
		p = escaped
	}

	u.Path = p
	u.RawPath = ""

	if u.EscapedPath() != escaped {
		u.RawPath = escaped
	}
}

func clone(u *url.URL) *url.URL {
	if u == nil {
		return &url.URL{}
	}

	c := *u
	if u.User != nil {
		uc := *u.User
		c.User = &uc
	}

	return &c
}
