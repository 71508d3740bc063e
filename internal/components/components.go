// Package components holds the reusable display primitives of the site (card,
// timeline, hero banner, navigation, avatars) and the template functions that
// expose them to page layouts.
package components

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// AssetResolver reports whether a site-relative asset (e.g. "/images/team/a.jpg")
// exists in the static tree.
type AssetResolver func(ref string) bool

// Renderer renders component templates. It is safe for concurrent use once built.
type Renderer struct {
	tmpl   *template.Template
	assets AssetResolver
}

// NewRenderer parses the component templates. A nil resolver treats every local
// asset as present.
func NewRenderer(assets AssetResolver) (*Renderer, error) {
	if assets == nil {
		assets = func(string) bool { return true }
	}
	r := &Renderer{assets: assets}

	tmpl, err := template.New("components").Funcs(r.Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse component templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

func (r *Renderer) render(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render component %q: %w", name, err)
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

// Funcs is the function map shared by component templates and page layouts.
func (r *Renderer) Funcs() template.FuncMap {
	return template.FuncMap{
		"icon":              Icon,
		"card":              r.Card,
		"featureCard":       r.FeatureCard,
		"linkCard":          r.LinkCard,
		"categoryCard":      r.CategoryCard,
		"documentCard":      r.DocumentCard,
		"presentationCard":  r.PresentationCard,
		"memberCard":        r.MemberCard,
		"avatar":            r.Avatar,
		"timeline":          r.Timeline,
		"hero":              r.Hero,
		"nav":               Nav,
		"statusStyle":       StyleFor,
		"formatDate":        FormatDate,
		"shortDate":         ShortDate,
		"initials":          Initials,
		"downloadURL":       DownloadURL,
		"presentURL":        PresentURL,
		"exportURL":         ExportURL,
		"mailto":            Mailto,
		"tel":               Tel,
		"milestoneStats":    CountMilestones,
		"presentationStats": CountPresentations,
		"phases":            GroupByPhase,
		"team":              SplitTeam,
		"add":               func(a, b int) int { return a + b },
		"odd":               func(i int) bool { return i%2 == 1 },
	}
}
