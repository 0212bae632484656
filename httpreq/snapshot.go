package httpreq

import (
	"net/http"
	"strings"

	"github.com/vitalvas/weburl/uribuilder"
	"github.com/vitalvas/weburl/urlvalue"
)

// Snapshot is the request data needed to construct a URL value.
type Snapshot struct {
	// Host is the requested host, optionally with a port.
	Host string

	// Path is the raw request path including the base directory.
	Path string

	// RawQuery is the encoded query string without the leading "?".
	RawQuery string

	// TLS reports whether the request arrived over HTTPS.
	TLS bool
}

// SnapshotFromRequest captures the URL related fields of r. The request is
// treated as secure when it carries TLS state or its URL scheme has been
// set to "https", for example by a proxy headers middleware.
func SnapshotFromRequest(r *http.Request) Snapshot {
	host := r.Host
	if host == "" {
		host = r.URL.Host
	}

	return Snapshot{
		Host:     host,
		Path:     r.URL.EscapedPath(),
		RawQuery: r.URL.RawQuery,
		TLS:      r.TLS != nil || strings.EqualFold(r.URL.Scheme, "https"),
	}
}

// NewURL builds a URL value from s. The directory prefix is stripped from
// the request path, query parameters are applied in request order and the
// scheme is "https" for TLS requests and "http" otherwise. Non-ASCII host
// names are converted to their ASCII form.
func NewURL(s Snapshot, directory string) (*urlvalue.URL, error) {
	if directory == "" {
		directory = urlvalue.DefaultDirectory
	}

	host, err := uribuilder.ASCIIHost(s.Host)
	if err != nil {
		return nil, err
	}

	u := urlvalue.New(host, directory)
	u.SetPath(stripDirectory(s.Path, directory))

	if err := u.SetQuery(s.RawQuery); err != nil {
		return nil, err
	}

	if s.TLS {
		u.SetScheme("https")
	} else {
		u.SetScheme("http")
	}

	return u, nil
}

// stripDirectory removes the directory prefix from p. A path that does not
// carry the prefix loses only its leading slash.
func stripDirectory(p, directory string) string {
	if rest, ok := strings.CutPrefix(p, directory); ok {
		return rest
	}

	if rest, ok := strings.CutPrefix(p, strings.TrimSuffix(directory, "/")); ok && (rest == "" || rest[0] == '/') {
		return strings.TrimPrefix(rest, "/")
	}

	return strings.TrimPrefix(p, "/")
}
