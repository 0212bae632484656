package urlvalue

import (
	"strconv"
	"strings"
)

// Build renders the URL using the stored path, format, parameters and
// fragment. The authority is included when absolute is true or the URL is
// absolute by default, and the host is not empty.
func (u *URL) Build(absolute bool) string {
	var b strings.Builder

	u.writeAuthority(&b, absolute)
	b.WriteString(u.dir)
	b.WriteString(u.path)

	if u.format != nil {
		b.WriteByte('.')
		b.WriteString(*u.format)
	}

	if u.params.len() > 0 {
		b.WriteByte('?')
		u.params.encode(&b)
	}

	if u.fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.fragment)
	}

	return b.String()
}

// BuildPath renders the URL with p in place of the stored path. Format,
// parameters and fragment belong to the stored path and are omitted.
func (u *URL) BuildPath(p string, absolute bool) string {
	var b strings.Builder

	u.writeAuthority(&b, absolute)
	b.WriteString(u.dir)
	b.WriteString(p)

	return b.String()
}

// String returns the URL built with the default absolute setting.
func (u *URL) String() string {
	return u.Build(false)
}

func (u *URL) writeAuthority(b *strings.Builder, absolute bool) {
	if !(absolute || u.absolute) || u.host == "" {
		return
	}

	if u.scheme != nil {
		b.WriteString(*u.scheme)
		b.WriteByte(':')
	}

	b.WriteString("//")

	if u.user != nil {
		b.WriteString(*u.user)

		if u.password != nil {
			b.WriteByte(':')
			b.WriteString(*u.password)
		}

		b.WriteByte('@')
	}

	b.WriteString(u.host)

	if u.port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(*u.port))
	}
}
