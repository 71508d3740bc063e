package model

// SiteMeta is the typed form of data/site.yaml.
type SiteMeta struct {
	Title          string       `yaml:"title"`
	ProjectName    string       `yaml:"projectName"`
	ProjectID      string       `yaml:"projectId"`
	Tagline        string       `yaml:"tagline"`
	Description    string       `yaml:"description"`
	Keywords       string       `yaml:"keywords"`
	Copyright      string       `yaml:"copyright"`
	Contact        ContactInfo  `yaml:"contact"`
	Achievements   []string     `yaml:"achievements"`
	ResearchPhases []string     `yaml:"researchPhases"`
	Features       []CardSpec   `yaml:"features"`
	QuickLinks     []CardSpec   `yaml:"quickLinks"`
	Phases         []PhaseSpec  `yaml:"phases"`
	Assessments    []Assessment `yaml:"assessments"`
	Categories     []CardSpec   `yaml:"documentCategories"`
	Inquiries      []InquiryRow `yaml:"inquiries"`
}

type ContactInfo struct {
	Email       string   `yaml:"email"`
	Phone       string   `yaml:"phone"`
	Address     []string `yaml:"address"`
	Location    string   `yaml:"location"`
	MapURL      string   `yaml:"mapUrl"`
	FormEnabled bool     `yaml:"formEnabled"`
}

// CardSpec is a hard-coded card (feature, quick link, category) from site.yaml.
type CardSpec struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Href        string `yaml:"href"`
}

type PhaseSpec struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Class       string `yaml:"class"`
}

// Assessment is one row of the milestones page assessment breakdown table.
type Assessment struct {
	Item             string `yaml:"item"`
	DueDate          string `yaml:"dueDate"`
	Weightage        string `yaml:"weightage"`
	LearningOutcomes string `yaml:"learningOutcomes"`
	DeliverableFocus string `yaml:"deliverableFocus"`
}

type InquiryRow struct {
	Category string `yaml:"category"`
	Detail   string `yaml:"detail"`
	Email    string `yaml:"email"`
	Notes    string `yaml:"notes"`
}
