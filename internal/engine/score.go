package engine

import (
	"github.com/jonathan/job-agent/internal/types"
)

// Thresholds hold the fit category boundaries. A score greater than or equal
// to High is High Fit, a score in [Medium, High) is Medium Fit, anything
// lower is Low Fit. Boundary scores map to the higher category.
type Thresholds struct {
	High   float64
	Medium float64
}

// DefaultThresholds returns the standard category boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{High: 5, Medium: 2}
}

// Categorize maps a fit score to its category under the given thresholds.
func Categorize(score float64, t Thresholds) string {
	switch {
	case score >= t.High:
		return types.FitHigh
	case score >= t.Medium:
		return types.FitMedium
	default:
		return types.FitLow
	}
}

// ProfileScore computes the aggregate fit score of a profile against a
// keyword set: the sum of keyword scores across every skills category,
// every work experience's description and technologies, and every project's
// description and technologies. This scalar ranks jobs; it is not used for
// tailoring.
func ProfileScore(p *types.Profile, keywords []string) float64 {
	score := 0

	for _, category := range p.SkillCategories() {
		score += KeywordScore(p.Skills[category], keywords)
	}

	for _, exp := range p.WorkExperience {
		fragments := append(append([]string{}, exp.Description...), exp.Technologies...)
		score += KeywordScore(fragments, keywords)
	}

	for _, proj := range p.Projects {
		fragments := append(append([]string{}, proj.Description...), proj.Technologies...)
		score += KeywordScore(fragments, keywords)
	}

	return float64(score)
}
