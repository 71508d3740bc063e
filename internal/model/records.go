package model

// Status is the display state of a milestone or presentation.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
)

// Role is a team member's position in the project.
type Role string

const (
	RoleSupervisor   Role = "Supervisor"
	RoleCoSupervisor Role = "Co-Supervisor"
	RoleDevelopment  Role = "Research & Development Team"
)

type TeamMember struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	StudentID      string `json:"studentId,omitempty"`
	Specialization string `json:"specialization"`
	Institution    string `json:"institution"`
	Description    string `json:"description"`
	Email          string `json:"email"`
	Photo          string `json:"photo"`
	Achievement    string `json:"achievement,omitempty"`
}

// IsSupervisor is true for both supervisors and co-supervisors.
func (m TeamMember) IsSupervisor() bool {
	return m.Role == RoleSupervisor || m.Role == RoleCoSupervisor
}

type Document struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Size        string `json:"size"`
	Type        string `json:"type"`
	DownloadURL string `json:"downloadUrl"`
}

type Milestone struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	Marks            int    `json:"marks"`
	Weightage        string `json:"weightage"`
	Description      string `json:"description"`
	Status           Status `json:"status"`
	Phase            string `json:"phase"`
	LearningOutcomes string `json:"learningOutcomes"`
	DeliverableFocus string `json:"deliverableFocus"`
}

type Presentation struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      Status `json:"status"`
	Type        string `json:"type"`
	SlidesURL   string `json:"slidesUrl"`
}
