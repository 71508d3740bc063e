package fixtures

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dulitha99/Research-Website/internal/model"
	"github.com/Dulitha99/Research-Website/site"
)

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"data/team.json": {Data: []byte(`{"team": [
			{"id": 1, "name": "Dr. Ada Lovelace", "role": "Supervisor", "email": "ada@example.com"},
			{"id": 2, "name": "Alan Turing", "role": "Research & Development Team", "studentId": "IT001"}
		]}`)},
		"data/milestones.json": {Data: []byte(`{"milestones": [
			{"id": 1, "title": "Proposal", "date": "2024-08-01", "marks": 12, "status": "completed", "phase": "Phase 1: Start"}
		]}`)},
		"data/site.yaml": {Data: []byte("title: SilentWatch\ncontact:\n  email: info@example.com\n  formEnabled: true\nphases:\n  - title: 'Phase 1: Start'\n    class: phase-blue\n")},
	}

	var s model.SiteData
	require.NoError(t, Load(fsys, &s))

	require.Len(t, s.Team, 2)
	assert.True(t, s.Team[0].IsSupervisor())
	assert.Equal(t, "IT001", s.Team[1].StudentID)

	require.Len(t, s.Milestones, 1)
	assert.Equal(t, model.StatusCompleted, s.Milestones[0].Status)
	assert.Equal(t, 12, s.Milestones[0].Marks)

	assert.Empty(t, s.Documents, "missing documents.json leaves the slice empty")
	assert.Empty(t, s.Presentations)

	assert.Equal(t, "SilentWatch", s.Meta.Title)
	assert.True(t, s.Meta.Contact.FormEnabled)
	require.Len(t, s.Meta.Phases, 1)
	assert.Equal(t, "phase-blue", s.Meta.Phases[0].Class)
	assert.Equal(t, "SilentWatch", s.Config["title"])
}

func TestLoad_MalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"data/documents.json": {Data: []byte(`{"documents": [`)},
	}
	var s model.SiteData
	err := Load(fsys, &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data/documents.json")
}

func TestLoad_MalformedSiteMeta(t *testing.T) {
	fsys := fstest.MapFS{
		"data/site.yaml": {Data: []byte("title: [unclosed\n")},
	}
	var s model.SiteData
	err := Load(fsys, &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data/site.yaml")
}

func TestLoadSiteMeta_Missing(t *testing.T) {
	raw, meta, err := LoadSiteMeta(fstest.MapFS{})
	require.NoError(t, err)
	assert.NotNil(t, raw)
	assert.Empty(t, raw)
	assert.Equal(t, model.SiteMeta{}, meta)
}

func TestLoadSiteMeta_LooseKeys(t *testing.T) {
	fsys := fstest.MapFS{
		"data/site.yaml": {Data: []byte("title: X\nextra:\n  nested: 1\n")},
	}
	raw, _, err := LoadSiteMeta(fsys)
	require.NoError(t, err)
	assert.Contains(t, raw, "extra")
	assert.Equal(t, "X", raw["title"])
}

func TestLoad_EmbeddedSite(t *testing.T) {
	var s model.SiteData
	require.NoError(t, Load(site.FS, &s))

	assert.Len(t, s.Team, 5)
	assert.Len(t, s.Documents, 4)
	assert.Len(t, s.Milestones, 8)
	assert.Len(t, s.Presentations, 4)

	known := []model.Status{model.StatusCompleted, model.StatusUpcoming, model.StatusOngoing}
	for _, m := range s.Milestones {
		assert.Contains(t, known, m.Status, "milestone %d", m.ID)
	}
	for _, p := range s.Presentations {
		assert.Contains(t, known, p.Status, "presentation %d", p.ID)
	}

	assert.Equal(t, "SilentWatch", s.Meta.Title)
	assert.Len(t, s.Meta.Assessments, 8)
	assert.Len(t, s.Meta.Phases, 3)
	assert.True(t, s.Meta.Contact.FormEnabled)
}
