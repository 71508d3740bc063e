package components

import (
	"math"

	"github.com/Dulitha99/Research-Website/internal/model"
)

type MilestoneStats struct {
	Total             int
	Completed         int
	Ongoing           int
	Upcoming          int
	Remaining         int
	CompletionPercent int
}

func CountMilestones(milestones []model.Milestone) MilestoneStats {
	s := MilestoneStats{Total: len(milestones)}
	for _, m := range milestones {
		switch m.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusOngoing:
			s.Ongoing++
		case model.StatusUpcoming:
			s.Upcoming++
		}
	}
	s.Remaining = s.Ongoing + s.Upcoming
	if s.Total > 0 {
		s.CompletionPercent = int(math.Round(float64(s.Completed) * 100 / float64(s.Total)))
	}
	return s
}

type PresentationStats struct {
	Total     int
	Completed int
	Upcoming  int
}

func CountPresentations(presentations []model.Presentation) PresentationStats {
	s := PresentationStats{Total: len(presentations)}
	for _, p := range presentations {
		switch p.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusUpcoming:
			s.Upcoming++
		}
	}
	return s
}

type PhaseGroup struct {
	model.PhaseSpec
	Milestones []model.Milestone
}

// GroupByPhase returns one group per configured phase, in configuration order,
// holding the milestones whose phase label matches exactly. Milestones naming an
// unconfigured phase get a trailing group each, in order of first appearance.
func GroupByPhase(specs []model.PhaseSpec, milestones []model.Milestone) []PhaseGroup {
	groups := make([]PhaseGroup, 0, len(specs))
	index := make(map[string]int, len(specs))
	for _, spec := range specs {
		index[spec.Title] = len(groups)
		groups = append(groups, PhaseGroup{PhaseSpec: spec})
	}
	for _, m := range milestones {
		i, ok := index[m.Phase]
		if !ok {
			i = len(groups)
			index[m.Phase] = i
			groups = append(groups, PhaseGroup{PhaseSpec: model.PhaseSpec{Title: m.Phase}})
		}
		groups[i].Milestones = append(groups[i].Milestones, m)
	}
	return groups
}

type TeamSplit struct {
	Supervisors []model.TeamMember
	Developers  []model.TeamMember
}

// SplitTeam separates supervisors (and co-supervisors) from the development
// team. Members with any other role are not shown.
func SplitTeam(team []model.TeamMember) TeamSplit {
	var s TeamSplit
	for _, m := range team {
		switch {
		case m.IsSupervisor():
			s.Supervisors = append(s.Supervisors, m)
		case m.Role == model.RoleDevelopment:
			s.Developers = append(s.Developers, m)
		}
	}
	return s
}
