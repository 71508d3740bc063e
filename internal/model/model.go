package model

import (
	"html/template"
	"time"
)

// ContentItem represents a single rendered page (home, domain, milestones...).
type ContentItem struct {
	Title       string
	Date        time.Time
	Type        string
	SourcePath  string
	Permalink   string
	Route       string
	ContentHTML template.HTML
	Frontmatter map[string]interface{}
	Summary     string
	Layout      string
	Hero        Hero
}

// Hero holds the banner text for a page, taken from frontmatter.
type Hero struct {
	Title       string
	Subtitle    string
	Description string
	ShowButtons bool
}

// SiteData holds all site-wide data: raw config, metadata, fixtures and content.
type SiteData struct {
	Config        map[string]interface{}
	Meta          SiteMeta
	Team          []TeamMember
	Documents     []Document
	Milestones    []Milestone
	Presentations []Presentation
	ContentItems  []*ContentItem
	ContentByType map[string][]*ContentItem
}
