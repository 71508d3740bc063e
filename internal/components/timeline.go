package components

import (
	"html/template"

	"github.com/Dulitha99/Research-Website/internal/model"
)

type TimelineEntry struct {
	model.Milestone
	Style        StatusStyle
	DateLabel    string
	ShowProgress bool
}

// NewTimeline keeps the caller's order; nothing is sorted or dropped.
func NewTimeline(milestones []model.Milestone) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(milestones))
	for _, m := range milestones {
		entries = append(entries, TimelineEntry{
			Milestone:    m,
			Style:        StyleFor(m.Status),
			DateLabel:    FormatDate(m.Date),
			ShowProgress: m.Status == model.StatusCompleted,
		})
	}
	return entries
}

func (r *Renderer) Timeline(milestones []model.Milestone) (template.HTML, error) {
	return r.render("timeline", NewTimeline(milestones))
}
