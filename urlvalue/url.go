package urlvalue

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultDirectory is the directory used when none is given.
const DefaultDirectory = "/"

// URL holds the components of a server-side URL. The zero value is not
// usable; create instances with New or NewHost.
type URL struct {
	scheme   *string
	host     string
	port     *int
	user     *string
	password *string
	dir      string
	path     string
	comps    []string
	format   *string
	params   params
	fragment *string
	absolute bool
}

// New returns a URL for host with the given base directory. The directory
// is stored as given; use NewHost for the DefaultDirectory.
func New(host, directory string) *URL {
	return &URL{
		host:  host,
		dir:   directory,
		comps: []string{""},
	}
}

// NewHost returns a URL for host rooted at DefaultDirectory.
func NewHost(host string) *URL {
	return New(host, DefaultDirectory)
}

// SetScheme sets the scheme, such as "http" or "https".
func (u *URL) SetScheme(scheme string) *URL {
	u.scheme = &scheme
	return u
}

// Scheme returns the scheme and whether one has been set.
func (u *URL) Scheme() (string, bool) {
	return deref(u.scheme)
}

// SetHost sets the host. An empty host disables authority output.
func (u *URL) SetHost(host string) *URL {
	u.host = host
	return u
}

// Host returns the host.
func (u *URL) Host() string {
	return u.host
}

// SetPort sets the port and marks the URL absolute.
func (u *URL) SetPort(port int) *URL {
	u.port = &port
	u.absolute = true

	return u
}

// Port returns the port and whether one has been set.
func (u *URL) Port() (int, bool) {
	if u.port == nil {
		return 0, false
	}

	return *u.port, true
}

// SetUser sets the user name and marks the URL absolute.
func (u *URL) SetUser(user string) *URL {
	u.user = &user
	u.absolute = true

	return u
}

// User returns the user name and whether one has been set.
func (u *URL) User() (string, bool) {
	return deref(u.user)
}

// SetPassword sets the password and marks the URL absolute. The password
// is only rendered together with a user.
func (u *URL) SetPassword(password string) *URL {
	u.password = &password
	u.absolute = true

	return u
}

// Password returns the password and whether one has been set.
func (u *URL) Password() (string, bool) {
	return deref(u.password)
}

// SetDirectory sets the base directory, with leading and trailing slashes.
// The value is used verbatim.
func (u *URL) SetDirectory(dir string) *URL {
	u.dir = dir
	return u
}

// Directory returns the base directory.
func (u *URL) Directory() string {
	return u.dir
}

// SetPath sets the path, without base directory or leading slash.
//
// Anything from the first "?" onwards is discarded. When the last segment
// contains a ".", the text after the last "." becomes the format and is
// trimmed from the stored path. Otherwise the current format is kept.
func (u *URL) SetPath(p string) *URL {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}

	if base := p[strings.LastIndexByte(p, '/')+1:]; strings.Contains(base, ".") {
		format := base[strings.LastIndexByte(base, '.')+1:]
		u.format = &format
		p = p[:len(p)-len(format)-1]
	}

	u.path = p
	u.comps = strings.Split(p, "/")

	return u
}

// Path returns the path, without base directory, leading slash or format.
func (u *URL) Path() string {
	return u.path
}

// Component returns the path segment at index.
func (u *URL) Component(index int) (string, error) {
	if index < 0 || index >= len(u.comps) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrComponentOutOfRange, index, len(u.comps))
	}

	return u.comps[index], nil
}

// Components returns a copy of the "/"-separated path segments.
func (u *URL) Components() []string {
	return slices.Clone(u.comps)
}

// SetFormat overrides the format, such as "html" or "json".
func (u *URL) SetFormat(format string) *URL {
	u.format = &format
	return u
}

// Format returns the format and whether one has been set.
func (u *URL) Format() (string, bool) {
	return deref(u.format)
}

// SetParameter sets a query parameter. An existing parameter keeps its
// position in the output.
func (u *URL) SetParameter(name, value string) *URL {
	u.params.set(name, value)
	return u
}

// SetParameters sets every parameter in m. Go maps carry no order, so keys
// are applied in sorted order.
func (u *URL) SetParameters(m map[string]string) *URL {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		u.params.set(k, m[k])
	}

	return u
}

// SetParameterList sets parameters in the order given.
func (u *URL) SetParameterList(list []Param) *URL {
	for _, p := range list {
		u.params.set(p.Name, p.Value)
	}

	return u
}

// SetQuery decodes an encoded query string and sets its parameters in the
// order they appear. For repeated keys the last value wins.
func (u *URL) SetQuery(rawQuery string) error {
	list, err := parseQuery(rawQuery)
	if err != nil {
		return err
	}

	u.SetParameterList(list)

	return nil
}

// HasParameter reports whether name is set to a non-empty value. The empty
// string and "0" are treated as empty.
func (u *URL) HasParameter(name string) bool {
	v, ok := u.params.get(name)
	return ok && !isEmptyValue(v)
}

// Parameter returns the value of the named parameter.
func (u *URL) Parameter(name string) (string, error) {
	v, ok := u.params.get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrParameterNotFound, name)
	}

	return v, nil
}

// Parameters returns the parameters in insertion order.
func (u *URL) Parameters() []Param {
	return u.params.list()
}

// RemoveParameter removes a parameter. Removing a missing one is a no-op.
func (u *URL) RemoveParameter(name string) *URL {
	u.params.remove(name)
	return u
}

// ClearParameters removes all parameters.
func (u *URL) ClearParameters() *URL {
	u.params.clear()
	return u
}

// SetFragment sets the fragment.
func (u *URL) SetFragment(fragment string) *URL {
	u.fragment = &fragment
	return u
}

// Fragment returns the fragment and whether one has been set.
func (u *URL) Fragment() (string, bool) {
	return deref(u.fragment)
}

// SetAbsolute controls whether Build includes the authority by default.
func (u *URL) SetAbsolute(absolute bool) *URL {
	u.absolute = absolute
	return u
}

// IsAbsolute reports whether the URL builds absolute output by default.
func (u *URL) IsAbsolute() bool {
	return u.absolute
}

// Clone returns a deep copy of u.
func (u *URL) Clone() *URL {
	c := *u
	c.scheme = clonePtr(u.scheme)
	c.port = clonePtr(u.port)
	c.user = clonePtr(u.user)
	c.password = clonePtr(u.password)
	c.format = clonePtr(u.format)
	c.fragment = clonePtr(u.fragment)
	c.comps = slices.Clone(u.comps)
	c.params = u.params.clone()

	return &c
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}

	return *p, true
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
