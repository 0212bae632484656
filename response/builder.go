package response

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"maps"
	"mime"
	"net/http"

	"github.com/vitalvas/weburl/uribuilder"
)

// DefaultCacheControl is set on every created response that does not
// provide its own Cache-Control header.
const DefaultCacheControl = "no-cache, must-revalidate, post-check=0, pre-check=0, max-age=0"

var (
	// ErrNoRenderer is returned when content is rendered without a Renderer.
	ErrNoRenderer = errors.New("response: renderer must not be nil")

	// ErrNoURIBuilder is returned when a URI is built without a uribuilder.
	ErrNoURIBuilder = errors.New("response: uri builder must not be nil")

	// ErrInvalidStatus is returned for status codes outside 100-599, or
	// redirects with a non-3xx status.
	ErrInvalidStatus = errors.New("response: invalid status code")
)

// Response is a fully built HTTP response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Send writes the response to w.
func (r *Response) Send(w http.ResponseWriter) error {
	h := w.Header()
	for k, v := range r.Header {
		h[k] = append([]string(nil), v...)
	}

	w.WriteHeader(r.Status)

	if len(r.Body) == 0 {
		return nil
	}

	_, err := w.Write(r.Body)

	return err
}

// Builder assembles a Response. Bodies are produced by rendering a layout
// template named after the format ("html.html" for "html") with the content
// and any assigned values.
type Builder struct {
	renderer Renderer
	uris     *uribuilder.Builder
	response *Response
	format   string
	template string
	content  any
	assigned map[string]any
}

// New returns a Builder with a fresh 200 OK response.
func New(renderer Renderer, uris *uribuilder.Builder) *Builder {
	b := &Builder{
		renderer: renderer,
		uris:     uris,
		format:   "html",
		template: "html.html",
		assigned: map[string]any{},
	}
	b.reset(http.StatusOK, nil)

	return b
}

// Create replaces the response with an empty one carrying status and
// header. DefaultCacheControl is added unless header sets Cache-Control.
func (b *Builder) Create(status int, header http.Header) error {
	if status < 100 || status > 599 {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, status)
	}

	b.reset(status, header)

	return nil
}

func (b *Builder) reset(status int, header http.Header) {
	h := http.Header{}
	for k, v := range header {
		h[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}

	if h.Get("Cache-Control") == "" {
		h.Set("Cache-Control", DefaultCacheControl)
	}

	b.response = &Response{Status: status, Header: h}
}

// Response returns the current response.
func (b *Builder) Response() *Response {
	return b.response
}

// SetResponse replaces the current response.
func (b *Builder) SetResponse(r *Response) {
	b.response = r
}

// SetFormat sets the output format and selects the "{format}.{format}"
// layout template.
func (b *Builder) SetFormat(format string) *Builder {
	b.format = format
	b.template = format + "." + format

	return b
}

// Format returns the output format.
func (b *Builder) Format() string {
	return b.format
}

// SetTemplate overrides the layout template.
func (b *Builder) SetTemplate(name string) *Builder {
	b.template = name
	return b
}

// Template returns the layout template name.
func (b *Builder) Template() string {
	return b.template
}

// Assign makes value available to the layout template under key.
func (b *Builder) Assign(key string, value any) *Builder {
	b.assigned[key] = value
	return b
}

// Content returns the content passed to SetContent.
func (b *Builder) Content() any {
	return b.content
}

// SetContent renders the layout template with content and stores the result
// as the response body. The Content-Type is derived from the format when
// the response does not set one.
func (b *Builder) SetContent(content any) error {
	if b.renderer == nil {
		return ErrNoRenderer
	}

	b.content = content

	data := maps.Clone(b.assigned)
	data["content"] = content
	data["response"] = b

	var buf bytes.Buffer
	if err := b.renderer.Render(&buf, b.template, data); err != nil {
		return err
	}

	b.response.Body = buf.Bytes()

	if b.response.Header.Get("Content-Type") == "" {
		b.response.Header.Set("Content-Type", contentType(b.format))
	}

	return nil
}

// Render renders the named view with data and sets the output as content
// of the layout.
func (b *Builder) Render(name string, data any) error {
	if b.renderer == nil {
		return ErrNoRenderer
	}

	var buf bytes.Buffer
	if err := b.renderer.Render(&buf, name, data); err != nil {
		return err
	}

	return b.SetContent(template.HTML(buf.String()))
}

// URI builds a host-relative URI for path against the base URI. It is meant
// for use from templates.
func (b *Builder) URI(path string) (string, error) {
	if b.uris == nil {
		return "", ErrNoURIBuilder
	}

	u, err := b.uris.Build(path, false)
	if err != nil {
		return "", err
	}

	return u.String(), nil
}

// Redirect replaces the response with a redirect to the absolute URI built
// for path.
func (b *Builder) Redirect(path string, status int) (*Response, error) {
	if b.uris == nil {
		return nil, ErrNoURIBuilder
	}

	if status < 300 || status > 399 {
		return nil, fmt.Errorf("%w: %d is not a redirect", ErrInvalidStatus, status)
	}

	u, err := b.uris.Build(path, true)
	if err != nil {
		return nil, err
	}

	b.reset(status, http.Header{"Location": {u.String()}})

	return b.response, nil
}

func contentType(format string) string {
	if ct := mime.TypeByExtension("." + format); ct != "" {
		return ct
	}

	return "text/html; charset=utf-8"
}
