// Package cvtemplate renders CVs to printable HTML with embedded templates.
package cvtemplate

import (
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/render"
)

//go:embed templates/*.html
var files embed.FS

// PageSize is a printable paper format
type PageSize struct {
	Name   string
	CSS    string
	Width  string
	Height string
}

// Supported page sizes; anything else falls back to A4
var (
	PageA4     = PageSize{Name: "A4", CSS: "A4", Width: "210mm", Height: "297mm"}
	PageLetter = PageSize{Name: "Letter", CSS: "letter", Width: "8.5in", Height: "11in"}
)

var catalogue = []render.TemplateInfo{
	{Name: "classic", Title: "Classic", Description: "Centred serif header, single column", PageSizes: []string{"A4", "Letter"}},
	{Name: "modern", Title: "Modern", Description: "Coloured sidebar with skills and contact", PageSizes: []string{"A4", "Letter"}},
	{Name: "minimal", Title: "Minimal", Description: "Light typography, no decoration", PageSizes: []string{"A4", "Letter"}},
}

// Renderer implements render.CVRenderer
type Renderer struct {
	templates map[string]*template.Template
}

// New parses every embedded template
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(catalogue))}
	for _, info := range catalogue {
		tmpl, err := template.ParseFS(files, "templates/blocks.html", "templates/"+info.Name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", info.Name, err)
		}
		r.templates[info.Name] = tmpl.Lookup(info.Name + ".html")
	}
	return r, nil
}

// Templates returns the catalogue
func (r *Renderer) Templates() []render.TemplateInfo {
	out := make([]render.TemplateInfo, len(catalogue))
	copy(out, catalogue)
	return out
}

type view struct {
	CV         *entity.CVData
	Name       string
	Profession string
	Summary    string
	Photo      template.URL
	Groups     []entity.ExperienceGroup
	Page       PageSize
}

// Render writes the CV with the named template
func (r *Renderer) Render(w io.Writer, name, pageSize string, cv *entity.CVData) error {
	tmpl, ok := r.templates[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return errs.ErrTemplateNotFound
	}
	if cv == nil {
		cv = &entity.CVData{}
	}

	v := view{
		CV:         cv,
		Name:       cv.PersonalInformation.FullName(),
		Profession: cv.PrimaryProfession(),
		Photo:      photoURI(cv.PersonalInformation),
		Groups:     cv.ExperiencesByCategory(),
		Page:       ResolvePageSize(pageSize),
	}
	for _, s := range cv.Summaries {
		if text := strings.TrimSpace(s.Text); text != "" {
			v.Summary = text
			break
		}
	}

	if err := tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return nil
}

// ResolvePageSize maps a query value to a page size
func ResolvePageSize(s string) PageSize {
	if strings.EqualFold(strings.TrimSpace(s), "letter") {
		return PageLetter
	}
	return PageA4
}

// photoURI embeds photo bytes as a data URI, else keeps a remote URL
func photoURI(p entity.PersonalInformation) template.URL {
	if len(p.PhotoData) > 0 {
		mime := p.PhotoMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(p.PhotoData))
	}
	if strings.HasPrefix(p.PhotoURL, "https://") || strings.HasPrefix(p.PhotoURL, "http://") {
		return template.URL(p.PhotoURL)
	}
	return ""
}

var _ render.CVRenderer = (*Renderer)(nil)
