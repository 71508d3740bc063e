package components

import (
	"html/template"
	"strings"
	"unicode/utf8"
)

// Initials concatenates the first letter of every whitespace-separated part of name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
	}
	return b.String()
}

type avatarView struct {
	Name     string
	Photo    string
	Initials string
	Fallback bool
}

// Avatar renders a member photo. When the photo is missing, or is a local asset
// that is not in the static tree, the initials circle is rendered instead. Remote
// photos keep a client-side fallback to the same circle.
func (r *Renderer) Avatar(name, photo string) (template.HTML, error) {
	photo = strings.TrimSpace(photo)
	v := avatarView{
		Name:     name,
		Photo:    photo,
		Initials: Initials(name),
		Fallback: photo == "" || (isLocalRef(photo) && !r.assets(photo)),
	}
	return r.render("avatar", v)
}

func isExternalRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "//")
}

func isLocalRef(ref string) bool {
	return !strings.HasPrefix(ref, "http://") &&
		!strings.HasPrefix(ref, "https://") &&
		!strings.HasPrefix(ref, "//") &&
		!strings.HasPrefix(ref, "data:")
}
