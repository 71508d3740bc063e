package components

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dulitha99/Research-Website/internal/model"
)

func newTestRenderer(t *testing.T, present ...string) *Renderer {
	t.Helper()
	set := map[string]bool{}
	for _, p := range present {
		set[p] = true
	}
	r, err := NewRenderer(func(ref string) bool { return set[ref] })
	require.NoError(t, err)
	return r
}

func TestCountMilestones(t *testing.T) {
	milestones := []model.Milestone{
		{ID: 1, Status: model.StatusCompleted},
		{ID: 2, Status: model.StatusCompleted},
		{ID: 3, Status: model.StatusOngoing},
		{ID: 4, Status: model.StatusUpcoming},
		{ID: 5, Status: model.StatusUpcoming},
		{ID: 6, Status: "cancelled"},
	}

	got := CountMilestones(milestones)

	want := MilestoneStats{Total: 6, Completed: 2, Ongoing: 1, Upcoming: 2, Remaining: 3, CompletionPercent: 33}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CountMilestones mismatch (-want +got):\n%s", diff)
	}
}

func TestCountMilestones_CompletedMatchesFilter(t *testing.T) {
	statuses := []model.Status{model.StatusCompleted, model.StatusUpcoming, model.StatusOngoing, model.StatusCompleted}
	var milestones []model.Milestone
	for i := 0; i < 40; i++ {
		milestones = append(milestones, model.Milestone{ID: i, Status: statuses[i%len(statuses)]})

		completed := 0
		for _, m := range milestones {
			if m.Status == "completed" {
				completed++
			}
		}
		assert.Equal(t, completed, CountMilestones(milestones).Completed)
	}
}

func TestCountMilestones_Empty(t *testing.T) {
	assert.Equal(t, MilestoneStats{}, CountMilestones(nil))
}

func TestCountPresentations(t *testing.T) {
	got := CountPresentations([]model.Presentation{
		{Status: model.StatusCompleted},
		{Status: model.StatusUpcoming},
		{Status: model.StatusUpcoming},
	})
	assert.Equal(t, PresentationStats{Total: 3, Completed: 1, Upcoming: 2}, got)
}

func TestDownloadURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "drive file view link",
			in:   "https://drive.google.com/file/d/1AbC_d-9/view?usp=sharing",
			want: "https://drive.google.com/uc?export=download&id=1AbC_d-9",
		},
		{
			name: "docs document edit link",
			in:   "https://docs.google.com/document/d/XyZ123/edit?usp=drive_link",
			want: "https://docs.google.com/document/d/XyZ123/export?format=pdf",
		},
		{
			name: "plain link is untouched",
			in:   "https://example.org/files/proposal.pdf",
			want: "https://example.org/files/proposal.pdf",
		},
		{
			name: "slides are not a document pattern",
			in:   "https://docs.google.com/presentation/d/abc/edit",
			want: "https://docs.google.com/presentation/d/abc/edit",
		},
		{
			name: "local path",
			in:   "/docs/checklist.pdf",
			want: "/docs/checklist.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DownloadURL(tt.in))
			assert.Equal(t, DownloadURL(tt.in), DownloadURL(tt.in))
		})
	}
}

func TestSlideURLs(t *testing.T) {
	slides := "https://docs.google.com/presentation/d/abc/"
	assert.Equal(t, "https://docs.google.com/presentation/d/abc/present", PresentURL(slides))
	assert.Equal(t, "https://docs.google.com/presentation/d/abc/export/pptx", ExportURL(slides))
	assert.Empty(t, PresentURL(""))
}

func TestTel(t *testing.T) {
	assert.Equal(t, "tel:+94117544801", string(Tel("+94 11 754 4801")))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "DHF", Initials("Dr. Harinda Fernando"))
	assert.Equal(t, "AS", Initials("  Amila   Senarathne "))
	assert.Equal(t, "ÉB", Initials("Élodie Brun"))
	assert.Empty(t, Initials(""))
}

func TestNav_ExactlyOneActive(t *testing.T) {
	for _, route := range Routes() {
		for _, current := range []string{route, route + "/", route + "?tab=1"} {
			items := Nav(current)
			active := 0
			for _, item := range items {
				if item.Active {
					active++
					assert.Equal(t, route, item.Href)
				}
			}
			assert.Equal(t, 1, active, "current route %q", current)
		}
	}
}

func TestNav_UnknownRoute(t *testing.T) {
	for _, current := range []string{"", "/unknown", "/domain/sub"} {
		for _, item := range Nav(current) {
			assert.False(t, item.Active, "current %q marked %q active", current, item.Href)
		}
	}
}

func TestNormalizeRoute(t *testing.T) {
	assert.Equal(t, "/", NormalizeRoute("/"))
	assert.Equal(t, "/", NormalizeRoute("//"))
	assert.Equal(t, "/about", NormalizeRoute("about/"))
	assert.Equal(t, "/contact", NormalizeRoute("/contact#form"))
	assert.Equal(t, "", NormalizeRoute(""))
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, "Completed", StyleFor(model.StatusCompleted).Label)
	assert.Equal(t, "check-circle", StyleFor(model.StatusCompleted).Icon)
	assert.Equal(t, "status-ongoing", StyleFor(model.StatusOngoing).Class)
	assert.Equal(t, "status-upcoming", StyleFor(model.StatusUpcoming).Class)

	unknown := StyleFor("on hold")
	assert.Equal(t, "On Hold", unknown.Label)
	assert.Equal(t, "status-unknown", unknown.Class)
	assert.Equal(t, "calendar", unknown.Icon)
	assert.Equal(t, "Unknown", StyleFor("").Label)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "January 31, 2025", FormatDate("2025-01-31"))
	assert.Equal(t, "1/31/2025", ShortDate("2025-01-31"))
	assert.Equal(t, "Ongoing", FormatDate("Ongoing"))
}

func TestIconKey(t *testing.T) {
	assert.Equal(t, "file-text", IconKey("FileText"))
	assert.Equal(t, "check-square", IconKey("CheckSquare"))
	assert.Equal(t, "book-open", IconKey("book_open"))
	assert.Equal(t, FallbackIcon, IconKey("Rocket"))
	assert.Equal(t, FallbackIcon, IconKey(""))
}

func TestParticles_Deterministic(t *testing.T) {
	r := newTestRenderer(t)
	h := model.Hero{Title: "SilentWatch", Subtitle: "Memory forensics", ShowButtons: true}

	first, err := r.Hero(h)
	require.NoError(t, err)
	second, err := r.Hero(h)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 20, strings.Count(string(first), `class="particle"`))
	assert.Contains(t, string(first), "--from-x: 100px; --from-y: 200px; --to-x: 800px; --to-y: 400px; --duration: 15s")
}

func TestHero_Buttons(t *testing.T) {
	r := newTestRenderer(t)

	with, err := r.Hero(model.Hero{Title: "Home", ShowButtons: true})
	require.NoError(t, err)
	assert.Contains(t, string(with), "Explore Research")

	without, err := r.Hero(model.Hero{Title: "Documents"})
	require.NoError(t, err)
	assert.NotContains(t, string(without), "Explore Research")
}

func TestCard(t *testing.T) {
	r := newTestRenderer(t)

	plain, err := r.Card(Card{Title: "Memory Forensics", Description: "Dumps <and> phases", Icon: "Shield"})
	require.NoError(t, err)
	assert.Contains(t, string(plain), "icon-shield")
	assert.Contains(t, string(plain), "Dumps &lt;and&gt; phases")
	assert.NotContains(t, string(plain), "<a ")

	linked, err := r.Card(Card{Title: "Team", Href: "/about", Image: "/images/team.jpg", Icon: "users"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(linked), `<a class="card-anchor" href="/about">`))
	assert.Contains(t, string(linked), `src="/images/team.jpg"`)
	assert.NotContains(t, string(linked), "icon-users")
}

func TestLinkCard_External(t *testing.T) {
	r := newTestRenderer(t)

	tests := []struct {
		href     string
		external bool
	}{
		{href: "https://github.com/silentwatch", external: true},
		{href: "http://example.com/paper", external: true},
		{href: "//cdn.example.com/slides", external: true},
		{href: "/documents", external: false},
		{href: "milestones", external: false},
	}
	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			got, err := r.LinkCard(model.CardSpec{Title: "Link", Href: tt.href})
			require.NoError(t, err)
			assert.Contains(t, string(got), `href="`+tt.href+`"`)
			if tt.external {
				assert.Contains(t, string(got), `target="_blank" rel="noopener noreferrer"`)
			} else {
				assert.NotContains(t, string(got), `target="_blank"`)
			}
		})
	}
}

func TestDocumentCard(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.DocumentCard(model.Document{
		Title:       "Project Proposal",
		Icon:        "FileCheck",
		Size:        "2.4 MB",
		Type:        "PDF",
		DownloadURL: "https://drive.google.com/file/d/abc123/view",
	})
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, "icon-file-check")
	assert.Contains(t, out, "https://drive.google.com/uc?export=download&amp;id=abc123")
	assert.Contains(t, out, "2.4 MB")
}

func TestPresentationCard(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.PresentationCard(model.Presentation{
		Title:     "PP1",
		Date:      "2025-04-08",
		Status:    model.StatusCompleted,
		Type:      "Progress Presentation",
		SlidesURL: "https://docs.google.com/presentation/d/xyz",
	})
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, "April 8, 2025")
	assert.Contains(t, out, "https://docs.google.com/presentation/d/xyz/present")
	assert.Contains(t, out, "https://docs.google.com/presentation/d/xyz/export/pptx")
	assert.Contains(t, out, "status-completed")
}

func TestAvatar_FallbackToInitials(t *testing.T) {
	r := newTestRenderer(t, "/images/team/present.jpg")

	missing, err := r.Avatar("Kasun Perera Silva", "/images/team/missing.jpg")
	require.NoError(t, err)
	assert.Contains(t, string(missing), `<div class="avatar-initials">KPS</div>`)
	assert.NotContains(t, string(missing), "<img")

	empty, err := r.Avatar("Nimal Jay", "")
	require.NoError(t, err)
	assert.Contains(t, string(empty), "NJ")

	present, err := r.Avatar("Kasun Perera", "/images/team/present.jpg")
	require.NoError(t, err)
	assert.Contains(t, string(present), `src="/images/team/present.jpg"`)
	assert.Contains(t, string(present), `data-initials="KP"`)

	remote, err := r.Avatar("Kasun Perera", "https://cdn.example.org/kp.jpg")
	require.NoError(t, err)
	assert.Contains(t, string(remote), "<img")
}

func TestTimeline_KeepsOrderAndStyles(t *testing.T) {
	milestones := []model.Milestone{
		{ID: 3, Title: "Final VIVA", Date: "2025-10-27", Status: model.StatusUpcoming},
		{ID: 1, Title: "Proposal", Date: "2025-01-31", Status: model.StatusCompleted, Marks: 12},
		{ID: 2, Title: "PP2", Date: "2025-09-15", Status: model.StatusOngoing},
	}

	entries := NewTimeline(milestones)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{entries[0].ID, entries[1].ID, entries[2].ID})
	assert.True(t, entries[1].ShowProgress)
	assert.False(t, entries[0].ShowProgress)
	assert.Equal(t, "January 31, 2025", entries[1].DateLabel)

	r := newTestRenderer(t)
	html, err := r.Timeline(milestones)
	require.NoError(t, err)
	out := string(html)
	assert.Less(t, strings.Index(out, "Final VIVA"), strings.Index(out, "Proposal"))
	assert.Equal(t, 1, strings.Count(out, "timeline-progress"))
	assert.Contains(t, out, "12 marks")
}

func TestGroupByPhase(t *testing.T) {
	specs := []model.PhaseSpec{{Title: "Phase 1"}, {Title: "Phase 2"}}
	milestones := []model.Milestone{
		{ID: 1, Phase: "Phase 2"},
		{ID: 2, Phase: "Phase 1"},
		{ID: 3, Phase: "Extra"},
		{ID: 4, Phase: "Phase 2"},
	}

	groups := GroupByPhase(specs, milestones)
	require.Len(t, groups, 3)
	assert.Equal(t, "Phase 1", groups[0].Title)
	assert.Len(t, groups[0].Milestones, 1)
	assert.Len(t, groups[1].Milestones, 2)
	assert.Equal(t, "Extra", groups[2].Title)
}

func TestSplitTeam(t *testing.T) {
	split := SplitTeam([]model.TeamMember{
		{ID: 1, Role: model.RoleSupervisor},
		{ID: 2, Role: model.RoleDevelopment},
		{ID: 3, Role: model.RoleCoSupervisor},
		{ID: 4, Role: "Alumni"},
	})
	assert.Len(t, split.Supervisors, 2)
	assert.Len(t, split.Developers, 1)
}
