package engine

import (
	"sort"
	"strings"

	"github.com/jonathan/job-agent/internal/types"
)

// KeepConfig makes the section full-keep policy explicit: a section whose
// original entry count is at most MinKeepWhenNoMatches is kept whole even
// when no entry matches the job keywords. Larger sections keep only entries
// with a positive score, so a long list with zero matches tailors down to
// empty.
type KeepConfig struct {
	Experience int
	Projects   int
}

// DefaultKeepConfig returns the standard full-keep thresholds.
func DefaultKeepConfig() KeepConfig {
	return KeepConfig{Experience: 3, Projects: 2}
}

// Tailor filters and reorders a profile for one job description. Personal
// info and education are carried verbatim; work experience and projects are
// stable-sorted by keyword score descending (ties keep their original
// relative order) and filtered per KeepConfig; each skills category is
// reordered so keyword-matching skills come first, both partitions keeping
// their original order.
func Tailor(p *types.Profile, jobDescription string, keep KeepConfig) *types.TailoredResume {
	keywords := ExtractKeywords(jobDescription)

	tailored := &types.TailoredResume{
		PersonalInfo: p.PersonalInfo,
		Education:    p.Education,
		Skills:       make(map[string][]string, len(p.Skills)),
		SkillOrder:   p.SkillCategories(),
	}

	tailored.WorkExperience = tailorExperience(p.WorkExperience, keywords, keep.Experience)
	tailored.Projects = tailorProjects(p.Projects, keywords, keep.Projects)

	for _, category := range tailored.SkillOrder {
		tailored.Skills[category] = tailorSkills(p.Skills[category], keywords)
	}

	return tailored
}

func tailorExperience(entries []types.Experience, keywords []string, minKeep int) []types.Experience {
	scores := make([]int, len(entries))
	for i, exp := range entries {
		fragments := []string{exp.Title, exp.Company}
		fragments = append(fragments, exp.Description...)
		fragments = append(fragments, exp.Technologies...)
		scores[i] = KeywordScore(fragments, keywords)
	}

	order := sortedIndexes(scores)
	keepAll := len(entries) <= minKeep

	tailored := make([]types.Experience, 0, len(entries))
	for _, i := range order {
		if scores[i] > 0 || keepAll {
			tailored = append(tailored, entries[i])
		}
	}
	return tailored
}

func tailorProjects(entries []types.Project, keywords []string, minKeep int) []types.Project {
	scores := make([]int, len(entries))
	for i, proj := range entries {
		fragments := []string{proj.Name}
		fragments = append(fragments, proj.Description...)
		fragments = append(fragments, proj.Technologies...)
		scores[i] = KeywordScore(fragments, keywords)
	}

	order := sortedIndexes(scores)
	keepAll := len(entries) <= minKeep

	tailored := make([]types.Project, 0, len(entries))
	for _, i := range order {
		if scores[i] > 0 || keepAll {
			tailored = append(tailored, entries[i])
		}
	}
	return tailored
}

// sortedIndexes returns entry indexes ordered by score descending; equal
// scores keep their original relative order.
func sortedIndexes(scores []int) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order
}

// tailorSkills partitions a category's skills into keyword matches and the
// rest, each partition preserving its original order, matches first. A skill
// matches when its text contains any keyword, case-insensitive.
func tailorSkills(skills, keywords []string) []string {
	matched := make([]string, 0, len(skills))
	unmatched := make([]string, 0, len(skills))

	for _, skill := range skills {
		if skillMatches(skill, keywords) {
			matched = append(matched, skill)
		} else {
			unmatched = append(unmatched, skill)
		}
	}

	return append(matched, unmatched...)
}

func skillMatches(skill string, keywords []string) bool {
	lower := strings.ToLower(skill)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
