package urlvalue

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Name  string
	Value string
}

// params is an insertion-ordered string map. Overwriting an existing key
// keeps its original position.
type params struct {
	keys   []string
	values map[string]string
}

func (p *params) set(name, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}

	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}

	p.values[name] = value
}

func (p *params) get(name string) (string, bool) {
	v, ok := p.values[name]
	return v, ok
}

func (p *params) remove(name string) {
	if _, ok := p.values[name]; !ok {
		return
	}

	delete(p.values, name)

	for i, k := range p.keys {
		if k == name {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

func (p *params) clear() {
	p.keys = nil
	p.values = nil
}

func (p *params) len() int {
	return len(p.keys)
}

func (p *params) list() []Param {
	out := make([]Param, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, Param{Name: k, Value: p.values[k]})
	}

	return out
}

func (p *params) clone() params {
	return params{keys: slices.Clone(p.keys), values: maps.Clone(p.values)}
}

// encode writes key=value pairs joined by "&", both sides form-encoded.
func (p *params) encode(b *strings.Builder) {
	for i, k := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[k]))
	}
}

// parseQuery decodes an encoded query string into ordered pairs. Keys keep
// the position of their first occurrence.
func parseQuery(raw string) ([]Param, error) {
	var out []Param

	for part := range strings.SplitSeq(raw, "&") {
		if part == "" {
			continue
		}

		key, value, _ := strings.Cut(part, "=")

		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQuery, part)
		}

		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQuery, part)
		}

		out = append(out, Param{Name: k, Value: v})
	}

	return out, nil
}

// isEmptyValue mirrors loose truthiness for query values: the empty string
// and "0" count as absent.
func isEmptyValue(v string) bool {
	return v == "" || v == "0"
}
