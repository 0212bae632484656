package httpreq

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/vitalvas/weburl/urlvalue"
	"golang.org/x/text/language"
)

// DefaultLanguage is the language of a request whose host carries no
// language label.
const DefaultLanguage = "en"

// ErrInvalidLanguage is returned by LanguageTag when the stored language
// code is not a well-formed BCP 47 tag.
var ErrInvalidLanguage = errors.New("httpreq: invalid language code")

// Request holds the interpreted state of an incoming request: its URL value,
// language, form values, headers, cookies and uploaded files.
type Request struct {
	url      *urlvalue.URL
	language string
	id       string
	post     url.Values
	header   http.Header
	cookies  []*http.Cookie
	files    map[string][]*multipart.FileHeader
}

// New returns a Request wrapping u. The language is inferred from the host
// of u.
func New(u *urlvalue.URL) *Request {
	r := &Request{
		language: DefaultLanguage,
		post:     url.Values{},
		header:   http.Header{},
		files:    map[string][]*multipart.FileHeader{},
	}
	r.SetURL(u)

	return r
}

// SetURL replaces the URL value. When the host has more than two
// dot-separated labels and the first one is exactly two characters long,
// that label becomes the request language.
func (r *Request) SetURL(u *urlvalue.URL) *Request {
	r.url = u

	if lang, ok := HostLanguage(u.Host()); ok {
		r.language = lang
	}

	return r
}

// HostLanguage returns the language label of host, if any.
func HostLanguage(host string) (string, bool) {
	parts := strings.Split(host, ".")
	if len(parts) > 2 && len(parts[0]) == 2 {
		return parts[0], true
	}

	return "", false
}

// URL returns the URL value.
func (r *Request) URL() *urlvalue.URL {
	return r.url
}

// SetLanguage sets the request language.
func (r *Request) SetLanguage(lang string) *Request {
	r.language = lang
	return r
}

// Language returns the request language code.
func (r *Request) Language() string {
	return r.language
}

// LanguageTag parses the language code as a BCP 47 tag.
func (r *Request) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(r.language)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, r.language, err)
	}

	return tag, nil
}

// SetID sets the request identifier.
func (r *Request) SetID(id string) *Request {
	r.id = id
	return r
}

// ID returns the request identifier, or an empty string.
func (r *Request) ID() string {
	return r.id
}

// SetPath sets the path on the URL value.
func (r *Request) SetPath(p string) *Request {
	r.url.SetPath(p)
	return r
}

// Path returns the path of the URL value.
func (r *Request) Path() string {
	return r.url.Path()
}

// Format returns the format of the URL value.
func (r *Request) Format() (string, bool) {
	return r.url.Format()
}

// Component returns the path segment at index.
func (r *Request) Component(index int) (string, error) {
	return r.url.Component(index)
}

// Components returns the path segments.
func (r *Request) Components() []string {
	return r.url.Components()
}

// SetParameter sets a query parameter.
func (r *Request) SetParameter(name, value string) *Request {
	r.url.SetParameter(name, value)
	return r
}

// SetParameters sets query parameters from m.
func (r *Request) SetParameters(m map[string]string) *Request {
	r.url.SetParameters(m)
	return r
}

// HasParameter reports whether a query parameter is set to a non-empty
// value.
func (r *Request) HasParameter(name string) bool {
	return r.url.HasParameter(name)
}

// Parameter returns a query parameter.
func (r *Request) Parameter(name string) (string, error) {
	return r.url.Parameter(name)
}

// Parameters returns the query parameters in order.
func (r *Request) Parameters() []urlvalue.Param {
	return r.url.Parameters()
}

// SetPost sets a form value, replacing existing ones.
func (r *Request) SetPost(name string, values ...string) *Request {
	r.post[name] = values
	return r
}

// Post returns the first form value for name.
func (r *Request) Post(name string) string {
	return r.post.Get(name)
}

// HasPost reports whether a form value exists for name.
func (r *Request) HasPost(name string) bool {
	return r.post.Has(name)
}

// PostValues returns all form values.
func (r *Request) PostValues() url.Values {
	return r.post
}

// SetHeader sets a header value.
func (r *Request) SetHeader(name, value string) *Request {
	r.header.Set(name, value)
	return r
}

// SetHeaders copies every header in h.
func (r *Request) SetHeaders(h http.Header) *Request {
	for k, v := range h {
		r.header[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}

	return r
}

// Header returns the first value of the named header.
func (r *Request) Header(name string) string {
	return r.header.Get(name)
}

// Headers returns the request headers.
func (r *Request) Headers() http.Header {
	return r.header
}

// SetCookie stores a cookie, replacing one with the same name.
func (r *Request) SetCookie(c *http.Cookie) *Request {
	for i, existing := range r.cookies {
		if existing.Name == c.Name {
			r.cookies[i] = c
			return r
		}
	}

	r.cookies = append(r.cookies, c)

	return r
}

// Cookie returns the named cookie, or nil.
func (r *Request) Cookie(name string) *http.Cookie {
	for _, c := range r.cookies {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// Cookies returns all cookies.
func (r *Request) Cookies() []*http.Cookie {
	return r.cookies
}

// SetFiles replaces the uploaded files.
func (r *Request) SetFiles(files map[string][]*multipart.FileHeader) *Request {
	r.files = files
	return r
}

// Files returns the uploaded files.
func (r *Request) Files() map[string][]*multipart.FileHeader {
	return r.files
}
