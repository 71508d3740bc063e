package components

import (
	"html/template"

	"github.com/Dulitha99/Research-Website/internal/model"
)

// Card is the bordered content tile used across every page. Image wins over
// Icon; a non-empty Href turns the whole card into a link. External links
// open in a new tab.
type Card struct {
	Title       string
	Description string
	Icon        string
	Image       string
	Href        string
	External    bool
	Class       string
	Body        template.HTML
}

func (r *Renderer) Card(c Card) (template.HTML, error) {
	return r.render("card", c)
}

func (r *Renderer) FeatureCard(spec model.CardSpec) (template.HTML, error) {
	return r.Card(Card{Title: spec.Title, Description: spec.Description, Icon: spec.Icon, Class: "card-feature"})
}

// LinkCard is a quick-link card with a "Learn More" footer.
func (r *Renderer) LinkCard(spec model.CardSpec) (template.HTML, error) {
	body, err := r.render("link-body", spec)
	if err != nil {
		return "", err
	}
	return r.Card(Card{
		Title:       spec.Title,
		Description: spec.Description,
		Icon:        spec.Icon,
		Href:        spec.Href,
		External:    isExternalRef(spec.Href),
		Class:       "card-link-tile",
		Body:        body,
	})
}

func (r *Renderer) CategoryCard(spec model.CardSpec) (template.HTML, error) {
	return r.Card(Card{Title: spec.Title, Description: spec.Description, Icon: spec.Icon, Class: "card-category"})
}

type documentBody struct {
	model.Document
	Download string
}

func (r *Renderer) DocumentCard(d model.Document) (template.HTML, error) {
	body, err := r.render("document-body", documentBody{Document: d, Download: DownloadURL(d.DownloadURL)})
	if err != nil {
		return "", err
	}
	return r.Card(Card{Title: d.Title, Description: d.Description, Icon: d.Icon, Class: "card-document", Body: body})
}

type presentationBody struct {
	model.Presentation
	DateLabel string
	Style     StatusStyle
	View      string
	Download  string
}

func (r *Renderer) PresentationCard(p model.Presentation) (template.HTML, error) {
	body, err := r.render("presentation-body", presentationBody{
		Presentation: p,
		DateLabel:    FormatDate(p.Date),
		Style:        StyleFor(p.Status),
		View:         PresentURL(p.SlidesURL),
		Download:     ExportURL(p.SlidesURL),
	})
	if err != nil {
		return "", err
	}
	return r.Card(Card{
		Title:       p.Title,
		Description: p.Description,
		Icon:        "presentation",
		Class:       "card-presentation " + StyleFor(p.Status).Class,
		Body:        body,
	})
}

type memberBody struct {
	model.TeamMember
	Avatar template.HTML
}

func (r *Renderer) MemberCard(m model.TeamMember) (template.HTML, error) {
	avatar, err := r.Avatar(m.Name, m.Photo)
	if err != nil {
		return "", err
	}
	body, err := r.render("member-body", memberBody{TeamMember: m, Avatar: avatar})
	if err != nil {
		return "", err
	}
	class := "card-member"
	if m.IsSupervisor() {
		class += " card-supervisor"
	}
	return r.Card(Card{Title: m.Name, Description: m.Description, Class: class, Body: body})
}
