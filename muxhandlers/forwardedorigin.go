package muxhandlers

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ErrInvalidProxy is returned when a TrustedProxies entry is neither an IP
// address nor a CIDR prefix.
var ErrInvalidProxy = errors.New("forwarded origin: invalid proxy entry")

// DefaultTrustedProxies are the loopback and private ranges trusted when
// ForwardedOriginConfig.TrustedProxies is empty.
var DefaultTrustedProxies = []string{
	"127.0.0.0/8",
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"::1/128",
	"fc00::/7",
}

// ForwardedOriginConfig configures the ForwardedOrigin middleware behaviour.
type ForwardedOriginConfig struct {
	// TrustedProxies lists IP addresses and CIDR prefixes whose forwarding
	// headers are honoured. Defaults to DefaultTrustedProxies.
	TrustedProxies []string

	// EnableForwarded falls back to the RFC 7239 Forwarded header when the
	// X-Forwarded-* headers are absent.
	EnableForwarded bool
}

// ForwardedOriginMiddleware returns a middleware that restores the origin
// the client used when the application runs behind a reverse proxy. For
// requests from a trusted peer it sets r.URL.Scheme from X-Forwarded-Proto
// and r.Host from X-Forwarded-Host, so the URL value built for the request
// carries the public scheme and host.
func ForwardedOriginMiddleware(cfg ForwardedOriginConfig) (MiddlewareFunc, error) {
	entries := cfg.TrustedProxies
	if len(entries) == 0 {
		entries = DefaultTrustedProxies
	}

	trusted, err := parsePrefixes(entries)
	if err != nil {
		return nil, err
	}

	enableForwarded := cfg.EnableForwarded

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !peerTrusted(r.RemoteAddr, trusted) {
				next.ServeHTTP(w, r)
				return
			}

			scheme := forwardedScheme(r.Header.Get("X-Forwarded-Proto"))
			host := strings.TrimSpace(r.Header.Get("X-Forwarded-Host"))

			if enableForwarded && (scheme == "" || host == "") {
				proto, fwdHost := parseForwardedOrigin(r.Header.Get("Forwarded"))
				if scheme == "" {
					scheme = proto
				}

				if host == "" {
					host = fwdHost
				}
			}

			if scheme == "" && host == "" {
				next.ServeHTTP(w, r)
				return
			}

			r2 := new(http.Request)
			*r2 = *r
			u := *r.URL
			r2.URL = &u

			if scheme != "" {
				r2.URL.Scheme = scheme
			}

			if host != "" {
				r2.Host = host
			}

			next.ServeHTTP(w, r2)
		})
	}, nil
}

func parsePrefixes(entries []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(entries))

	for _, entry := range entries {
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, entry)
			}

			prefixes = append(prefixes, p.Masked())

			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, entry)
		}

		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return prefixes, nil
}

func peerTrusted(remoteAddr string, trusted []netip.Prefix) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}

	addr = addr.Unmap()

	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}

// forwardedScheme normalizes a forwarded protocol. Only http and https are
// accepted.
func forwardedScheme(v string) string {
	v = strings.ToLower(strings.Trim(strings.TrimSpace(v), `"`))
	if v == "http" || v == "https" {
		return v
	}

	return ""
}

// parseForwardedOrigin returns the proto and host directives of the first
// element of an RFC 7239 Forwarded header.
func parseForwardedOrigin(header string) (proto, host string) {
	first, _, _ := strings.Cut(header, ",")

	for pair := range strings.SplitSeq(first, ";") {
		key, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "proto":
			proto = forwardedScheme(val)
		case "host":
			host = strings.Trim(strings.TrimSpace(val), `"`)
		}
	}

	return proto, host
}
