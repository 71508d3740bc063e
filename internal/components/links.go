package components

import (
	"html/template"
	"regexp"
	"strings"
)

var (
	driveFilePattern    = regexp.MustCompile(`^https?://drive\.google\.com/file/d/([A-Za-z0-9_-]+)`)
	docsDocumentPattern = regexp.MustCompile(`^https?://docs\.google\.com/document/d/([A-Za-z0-9_-]+)`)
)

// DownloadURL turns Google Drive file links and Google Docs document links into
// their direct download form. Any other URL is returned verbatim.
func DownloadURL(raw string) string {
	if m := driveFilePattern.FindStringSubmatch(raw); m != nil {
		return "https://drive.google.com/uc?export=download&id=" + m[1]
	}
	if m := docsDocumentPattern.FindStringSubmatch(raw); m != nil {
		return "https://docs.google.com/document/d/" + m[1] + "/export?format=pdf"
	}
	return raw
}

// PresentURL opens a slide deck in presentation mode.
func PresentURL(slides string) string {
	return slideAction(slides, "/present")
}

// ExportURL downloads a slide deck as pptx.
func ExportURL(slides string) string {
	return slideAction(slides, "/export/pptx")
}

func slideAction(slides, suffix string) string {
	slides = strings.TrimRight(strings.TrimSpace(slides), "/")
	if slides == "" {
		return ""
	}
	return slides + suffix
}

func Mailto(email string) string {
	return "mailto:" + strings.TrimSpace(email)
}

// Tel builds a tel: link. html/template does not trust the tel scheme, so the
// number is reduced to digits and a leading + before being marked safe.
func Tel(phone string) template.URL {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return template.URL("tel:" + b.String())
}
