package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-agent/internal/profile"
	"github.com/jonathan/job-agent/internal/types"
)

func storeWithProfile(t *testing.T, name string, p *types.Profile) *profile.Store {
	t.Helper()
	store := profile.NewStore(t.TempDir())
	require.NoError(t, store.Save(name, p))
	return store
}

func validProfile() *types.Profile {
	return &types.Profile{
		PersonalInfo: types.PersonalInfo{Name: "Test User", Email: "t@example.com", Phone: "555"},
		Education:    []types.Education{},
		WorkExperience: []types.Experience{
			{Title: "Engineer", Company: "Tech Corp", StartDate: "2020-01",
				Description: []string{"Developed Python applications"}, Technologies: []string{"Python", "SQL"}},
		},
		Projects: []types.Project{},
		Skills: map[string][]string{
			"Languages": {"Python"},
		},
	}
}

func TestNew_MissingProfileFails(t *testing.T) {
	store := profile.NewStore(t.TempDir())

	_, err := New(store, "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestNew_SchemaInvalidProfileFails(t *testing.T) {
	dir := t.TempDir()
	store := profile.NewStore(dir)
	// Write a document missing required sections directly, bypassing the
	// store's save-time validation.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"personal_info": {}}`), 0o644))

	_, err := New(store, "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestEngine_ScoreJob(t *testing.T) {
	store := storeWithProfile(t, "me", validProfile())
	eng, err := New(store, "me")
	require.NoError(t, err)

	// "python" matches once in the skill list and once in the experience's
	// joined description+technologies text.
	assert.Equal(t, 2.0, eng.ScoreJob("Seeking Python engineer"))
}

func TestEngine_CategorizeJobs(t *testing.T) {
	store := storeWithProfile(t, "me", validProfile())
	eng, err := New(store, "me")
	require.NoError(t, err)
	eng.WithThresholds(Thresholds{High: 2, Medium: 1})

	jobs := eng.CategorizeJobs([]types.Job{
		{Role: "Python Engineer", Company: "Snake Corp"},
		{Role: "Chef", Company: "Bistro"},
	})

	require.Len(t, jobs, 2)
	assert.Equal(t, 2.0, jobs[0].FitScore)
	assert.Equal(t, types.FitHigh, jobs[0].FitCategory)
	assert.Equal(t, 0.0, jobs[1].FitScore)
	assert.Equal(t, types.FitLow, jobs[1].FitCategory)
}

func TestEngine_TailorUsesProfile(t *testing.T) {
	store := storeWithProfile(t, "me", validProfile())
	eng, err := New(store, "me")
	require.NoError(t, err)

	tailored := eng.Tailor("Seeking Python engineer")
	require.Len(t, tailored.WorkExperience, 1)
	assert.Equal(t, "Python", tailored.Skills["Languages"][0])
}
