package components

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Dulitha99/Research-Website/internal/model"
)

// StatusStyle is the display treatment for a status value.
type StatusStyle struct {
	Label string
	Class string
	Icon  string
}

// StyleFor maps a status to its badge label, css class and icon. Unknown values
// get the neutral calendar style.
func StyleFor(s model.Status) StatusStyle {
	switch s {
	case model.StatusCompleted:
		return StatusStyle{Label: "Completed", Class: "status-completed", Icon: "check-circle"}
	case model.StatusOngoing:
		return StatusStyle{Label: "Ongoing", Class: "status-ongoing", Icon: "clock"}
	case model.StatusUpcoming:
		return StatusStyle{Label: "Upcoming", Class: "status-upcoming", Icon: "clock"}
	}

	label := "Unknown"
	if raw := strings.TrimSpace(string(s)); raw != "" {
		label = cases.Title(language.English).String(raw)
	}
	return StatusStyle{Label: label, Class: "status-unknown", Icon: "calendar"}
}

var dateFormats = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate tries the common fixture and frontmatter date formats.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders "January 2, 2006", or the input unchanged when it does not parse.
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("January 2, 2006")
}

// ShortDate renders "1/2/2006".
func ShortDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("1/2/2006")
}
