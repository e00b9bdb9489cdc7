package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-agent/internal/types"
)

func experienceFixture(titles ...string) []types.Experience {
	entries := make([]types.Experience, 0, len(titles))
	for _, title := range titles {
		entries = append(entries, types.Experience{Title: title, Company: "Acme"})
	}
	return entries
}

func TestTailor_ExperienceSortedByScoreDescending(t *testing.T) {
	p := &types.Profile{
		WorkExperience: []types.Experience{
			{Title: "Analyst", Company: "Data Inc", Description: []string{"Built dashboards"}},
			{Title: "Engineer", Company: "Tech Corp", Description: []string{"Python services"}, Technologies: []string{"Python", "Docker"}},
			{Title: "Intern", Company: "Web Co", Description: []string{"Python scripts"}},
		},
		Skills: map[string][]string{},
	}

	tailored := Tailor(p, "Python Docker services", DefaultKeepConfig())

	require.Len(t, tailored.WorkExperience, 3)
	assert.Equal(t, "Engineer", tailored.WorkExperience[0].Title)
}

func TestTailor_ExperienceStableOnTies(t *testing.T) {
	p := &types.Profile{
		WorkExperience: []types.Experience{
			{Title: "First", Company: "A", Description: []string{"python"}},
			{Title: "Second", Company: "B", Description: []string{"python"}},
			{Title: "Third", Company: "C", Description: []string{"python"}},
			{Title: "Fourth", Company: "D", Description: []string{"python"}},
		},
		Skills: map[string][]string{},
	}

	tailored := Tailor(p, "python", DefaultKeepConfig())

	require.Len(t, tailored.WorkExperience, 4)
	assert.Equal(t, "First", tailored.WorkExperience[0].Title)
	assert.Equal(t, "Second", tailored.WorkExperience[1].Title)
	assert.Equal(t, "Third", tailored.WorkExperience[2].Title)
	assert.Equal(t, "Fourth", tailored.WorkExperience[3].Title)
}

func TestTailor_SmallExperienceListKeptWhole(t *testing.T) {
	p := &types.Profile{
		WorkExperience: experienceFixture("One", "Two", "Three"),
		Skills:         map[string][]string{},
	}

	// Nothing matches, but three entries are within the full-keep
	// threshold.
	tailored := Tailor(p, "kubernetes", DefaultKeepConfig())
	assert.Len(t, tailored.WorkExperience, 3)
}

func TestTailor_LongExperienceListWithNoMatchesTailorsToEmpty(t *testing.T) {
	p := &types.Profile{
		WorkExperience: experienceFixture("One", "Two", "Three", "Four"),
		Skills:         map[string][]string{},
	}

	tailored := Tailor(p, "kubernetes", DefaultKeepConfig())
	assert.Empty(t, tailored.WorkExperience)
}

func TestTailor_ZeroScoreEntriesSurviveInSmallList(t *testing.T) {
	p := &types.Profile{
		WorkExperience: []types.Experience{
			{Title: "Analyst", Company: "A"},
			{Title: "Python Engineer", Company: "B"},
		},
		Skills: map[string][]string{},
	}

	tailored := Tailor(p, "python", DefaultKeepConfig())

	require.Len(t, tailored.WorkExperience, 2)
	// The match sorts first, the zero-score entry stays because the list
	// is within the threshold.
	assert.Equal(t, "Python Engineer", tailored.WorkExperience[0].Title)
	assert.Equal(t, "Analyst", tailored.WorkExperience[1].Title)
}

func TestTailor_ProjectsUseSmallerThreshold(t *testing.T) {
	p := &types.Profile{
		Projects: []types.Project{
			{Name: "Alpha"},
			{Name: "Beta"},
			{Name: "Gamma"},
		},
		Skills: map[string][]string{},
	}

	// Three projects exceed the project threshold of two, so a zero-match
	// description drops them all.
	tailored := Tailor(p, "kubernetes", DefaultKeepConfig())
	assert.Empty(t, tailored.Projects)

	p.Projects = p.Projects[:2]
	tailored = Tailor(p, "kubernetes", DefaultKeepConfig())
	assert.Len(t, tailored.Projects, 2)
}

func TestTailor_ConfigurableKeepCounts(t *testing.T) {
	p := &types.Profile{
		WorkExperience: experienceFixture("One", "Two", "Three", "Four"),
		Skills:         map[string][]string{},
	}

	tailored := Tailor(p, "kubernetes", KeepConfig{Experience: 4, Projects: 2})
	assert.Len(t, tailored.WorkExperience, 4)
}

func TestTailor_SkillsMatchesFirstPreservingOrder(t *testing.T) {
	p := &types.Profile{
		Skills: map[string][]string{
			"Languages": {"Java", "Python", "Ruby", "Golang"},
		},
	}

	// "python" and "golang" match; matched skills lead in their original
	// relative order, the rest follow in theirs.
	tailored := Tailor(p, "Seeking Python or golang engineer", DefaultKeepConfig())
	assert.Equal(t, []string{"Python", "Golang", "Java", "Ruby"}, tailored.Skills["Languages"])
}

func TestTailor_EndToEndPythonScenario(t *testing.T) {
	p := &types.Profile{
		PersonalInfo: types.PersonalInfo{Name: "Test User"},
		Skills: map[string][]string{
			"Languages": {"Java", "Python"},
		},
	}

	tailored := Tailor(p, "Seeking Python engineer", DefaultKeepConfig())

	require.Contains(t, tailored.Skills, "Languages")
	assert.Equal(t, "Python", tailored.Skills["Languages"][0])
}

func TestTailor_CarriesEducationAndPersonalInfoVerbatim(t *testing.T) {
	p := &types.Profile{
		PersonalInfo: types.PersonalInfo{Name: "Test User", Email: "t@example.com"},
		Education: []types.Education{
			{Degree: "BSc", Major: "CS", Institution: "State U"},
		},
		Skills: map[string][]string{},
	}

	tailored := Tailor(p, "anything at all", DefaultKeepConfig())
	assert.Equal(t, p.PersonalInfo, tailored.PersonalInfo)
	assert.Equal(t, p.Education, tailored.Education)
}
