package components

import (
	"fmt"
	"html/template"
	"strings"
	"unicode"
)

// FallbackIcon is used for unknown icon keys, matching the documents page default.
const FallbackIcon = "file-text"

// knownIcons are the symbols defined in static/icons.svg.
var knownIcons = map[string]bool{
	"arrow-right": true, "award": true, "book-open": true, "brain": true,
	"building": true, "calendar": true, "check-circle": true, "check-square": true,
	"clock": true, "download": true, "external-link": true, "file-check": true,
	"file-text": true, "github": true, "graduation-cap": true, "hard-drive": true,
	"linkedin": true, "mail": true, "map-pin": true, "menu": true, "phone": true,
	"play": true, "presentation": true, "shield": true, "target": true,
	"trending-up": true, "users": true, "x": true, "zap": true,
}

// IconKey normalizes "FileText", "file_text" and "file-text" to "file-text".
// Unknown keys map to FallbackIcon.
func IconKey(name string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(name) {
		switch {
		case r == '_' || r == ' ':
			b.WriteRune('-')
		case unicode.IsUpper(r):
			if i > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteRune('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	key := b.String()
	if !knownIcons[key] {
		return FallbackIcon
	}
	return key
}

// Icon renders a reference into the icon sprite.
func Icon(name string) template.HTML {
	key := IconKey(name)
	return template.HTML(fmt.Sprintf(
		`<svg class="icon icon-%s" aria-hidden="true" focusable="false"><use href="/icons.svg#%s"></use></svg>`,
		key, key,
	))
}
