// Package templates renders the site's HTML pages from embedded
// html/template files. Each page template defines a "content" block that
// is executed inside the shared layout.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/ui/resources"
)

//go:embed *.html
var templateFS embed.FS

// Base holds the fields every page needs.
type Base struct {
	Title      string
	ActiveNav  string
	HideFooter bool

	AppName        string
	AppVersion     string
	SourceLanguage string
	TargetLanguage string
	HuggingFaceURL string
	UniversityURL  string
	Year           int
}

// NewBase returns a Base populated with the application constants.
func NewBase(title, activeNav string) Base {
	return Base{
		Title:          title,
		ActiveNav:      activeNav,
		AppName:        config.AppName,
		AppVersion:     config.AppVersion,
		SourceLanguage: "Ottoman Turkish",
		TargetLanguage: "Modern Turkish",
		HuggingFaceURL: config.HuggingFaceURL,
		UniversityURL:  config.UniversityURL,
		Year:           time.Now().Year(),
	}
}

var funcs = template.FuncMap{
	"percent": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v*100)
	},
	"seconds": func(v float64) string {
		return fmt.Sprintf("%.2fs", v)
	},
	"static": resources.StaticPath,
}

// Templates renders the site pages.
type Templates struct {
	pages map[string]*template.Template
}

// New parses all embedded templates. Each page is combined with the
// shared layout into its own template set.
func New() (*Templates, error) {
	// Fragment templates are parsed into the base set so every page, and
	// the SSE patcher, can execute them.
	layout, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, "layout.html", "admin_history.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pageNames := []string{
		"demo.html",
		"about.html",
		"research.html",
		"team.html",
		"admin_login.html",
		"admin.html",
		"error.html",
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.Must(layout.Clone()).ParseFS(templateFS, name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Templates{pages: pages}, nil
}

// Render executes the named page template into w.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("unknown template %q", page)
	}

	// Render to a buffer first so a template error never produces a
	// half-written response.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderFragment executes a standalone fragment template (no layout),
// returning the HTML as a string for SSE element patching.
func (t *Templates) RenderFragment(page, name string, data any) (string, error) {
	tmpl, ok := t.pages[page]
	if !ok {
		return "", fmt.Errorf("unknown template %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render fragment %s: %w", name, err)
	}
	return buf.String(), nil
}
