// Package config loads the YAML configuration of the example server.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration value fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the server configuration.
type Config struct {
	// Listen is the TCP address to listen on. Defaults to ":8080".
	Listen string `yaml:"listen"`

	// BaseURL is the directory the application is mounted under, with
	// leading and trailing slashes. Defaults to "/".
	BaseURL string `yaml:"base_url"`

	// PublicURL is the externally visible origin, such as
	// "https://example.com". It is the base for redirect targets. When
	// empty, the origin of each request is used.
	PublicURL string `yaml:"public_url"`

	// Absolute makes built URLs include scheme and host by default.
	Absolute bool `yaml:"absolute"`

	// Templates is the directory holding layout and view templates.
	// Defaults to "templates".
	Templates string `yaml:"templates"`

	// RequestID configures request identifiers.
	RequestID RequestIDConfig `yaml:"request_id"`

	// Proxy configures handling of reverse proxy headers.
	Proxy ProxyConfig `yaml:"proxy"`
}

// ProxyConfig configures handling of reverse proxy headers.
type ProxyConfig struct {
	// Enabled honours X-Forwarded-Proto and X-Forwarded-Host.
	Enabled bool `yaml:"enabled"`

	// Trusted lists proxy addresses and CIDR prefixes. When empty, loopback
	// and private ranges are trusted.
	Trusted []string `yaml:"trusted,omitempty"`

	// Forwarded also reads the RFC 7239 Forwarded header.
	Forwarded bool `yaml:"forwarded"`
}

// RequestIDConfig configures request identifiers.
type RequestIDConfig struct {
	// Header is the header carrying the ID. Defaults to "X-Request-ID".
	Header string `yaml:"header"`

	// TrustIncoming reuses IDs sent by clients.
	TrustIncoming bool `yaml:"trust_incoming"`

	// Version selects the UUID version, 4 or 7. Defaults to 4.
	Version int `yaml:"version"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes and validates a YAML configuration. Unknown fields are
// rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}

	if c.BaseURL == "" {
		c.BaseURL = "/"
	}

	if c.Templates == "" {
		c.Templates = "templates"
	}

	if c.RequestID.Header == "" {
		c.RequestID.Header = "X-Request-ID"
	}

	if c.RequestID.Version == 0 {
		c.RequestID.Version = 4
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("%w: base_url %q must start and end with \"/\"", ErrInvalidConfig, c.BaseURL)
	}

	if c.PublicURL != "" {
		u, err := url.Parse(c.PublicURL)
		if err != nil {
			return fmt.Errorf("%w: public_url: %w", ErrInvalidConfig, err)
		}

		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: public_url %q must be an http or https origin", ErrInvalidConfig, c.PublicURL)
		}
	}

	for _, entry := range c.Proxy.Trusted {
		if _, err := netip.ParsePrefix(entry); err == nil {
			continue
		}

		if _, err := netip.ParseAddr(entry); err != nil {
			return fmt.Errorf("%w: proxy.trusted entry %q", ErrInvalidConfig, entry)
		}
	}

	if c.RequestID.Version != 4 && c.RequestID.Version != 7 {
		return fmt.Errorf("%w: request_id.version %d must be 4 or 7", ErrInvalidConfig, c.RequestID.Version)
	}

	return nil
}

// Encode writes the configuration to w as YAML.
func (c *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return err
	}

	return enc.Close()
}
