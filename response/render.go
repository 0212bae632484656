package response

import (
	"html/template"
	"io"
	"io/fs"
)

// Renderer renders a named template with data.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// TemplateRenderer is a Renderer backed by html/template.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer parses the templates in fsys matching patterns.
// Templates are addressed by their base file name, such as "html.html".
func NewTemplateRenderer(fsys fs.FS, patterns ...string) (*TemplateRenderer, error) {
	tmpl, err := template.New("").ParseFS(fsys, patterns...)
	if err != nil {
		return nil, err
	}

	return &TemplateRenderer{tmpl: tmpl}, nil
}

// Render executes the named template.
func (r *TemplateRenderer) Render(w io.Writer, name string, data any) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
