package engine

import (
	"fmt"

	"github.com/jonathan/job-agent/internal/profile"
	"github.com/jonathan/job-agent/internal/types"
)

// Engine binds one loaded profile to the scoring and tailoring operations.
type Engine struct {
	profile    *types.Profile
	thresholds Thresholds
	keep       KeepConfig
}

// New constructs an engine for the named profile. Construction fails with a
// descriptive error when the profile is missing, malformed, or not
// schema-valid; no scoring or tailoring may proceed without a valid profile.
func New(store *profile.Store, name string) (*Engine, error) {
	p, warning, err := store.Load(name)
	if err != nil {
		return nil, fmt.Errorf("could not load profile %q: %w", name, err)
	}
	if warning != "" {
		return nil, fmt.Errorf("could not use profile %q: %s", name, warning)
	}
	return &Engine{
		profile:    p,
		thresholds: DefaultThresholds(),
		keep:       DefaultKeepConfig(),
	}, nil
}

// WithThresholds overrides the fit category thresholds.
func (e *Engine) WithThresholds(t Thresholds) *Engine {
	e.thresholds = t
	return e
}

// WithKeepConfig overrides the tailoring full-keep thresholds.
func (e *Engine) WithKeepConfig(k KeepConfig) *Engine {
	e.keep = k
	return e
}

// Profile returns the loaded profile.
func (e *Engine) Profile() *types.Profile {
	return e.profile
}

// ScoreJob computes the profile's aggregate fit score for a job description.
func (e *Engine) ScoreJob(description string) float64 {
	return ProfileScore(e.profile, ExtractKeywords(description))
}

// CategorizeJobs scores each job against the profile and fills in its fit
// score and fit category. The job description used for ranking is the role
// and company text; richer text is only available later, when a single job
// is tailored.
func (e *Engine) CategorizeJobs(jobs []types.Job) []types.Job {
	for i := range jobs {
		score := e.ScoreJob(jobs[i].Role + " " + jobs[i].Company)
		jobs[i].FitScore = score
		jobs[i].FitCategory = Categorize(score, e.thresholds)
	}
	return jobs
}

// Tailor produces the tailored resume for one job description.
func (e *Engine) Tailor(jobDescription string) *types.TailoredResume {
	return Tailor(e.profile, jobDescription, e.keep)
}
