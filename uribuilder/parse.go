package uribuilder

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"golang.org/x/net/idna"
)

// ErrSyntax is returned when a URI string cannot be parsed or its host is
// not a valid internationalized domain name.
var ErrSyntax = errors.New("uribuilder: invalid URI syntax")

// Parse parses s into a URI reference. Non-ASCII host names are converted
// to their ASCII (punycode) form.
func Parse(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	host, err := ASCIIHost(u.Host)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
	}

	u.Host = host

	return u, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *url.URL {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}

// ASCIIHost converts the host name in hostport to ASCII using the IDNA
// lookup profile. The port, if any, is preserved. ASCII input is returned
// unchanged.
func ASCIIHost(hostport string) (string, error) {
	if isASCII(hostport) {
		return hostport, nil
	}

	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		host, port = hostport, ""
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", err
	}

	if port == "" {
		return ascii, nil
	}

	return net.JoinHostPort(ascii, port), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}

	return true
}
