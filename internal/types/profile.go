// Package types provides type definitions for structured data used throughout the job-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// Profile represents a named resume profile stored as a JSON document.
type Profile struct {
	PersonalInfo   PersonalInfo        `json:"personal_info"`
	Education      []Education         `json:"education"`
	WorkExperience []Experience        `json:"work_experience"`
	Projects       []Project           `json:"projects"`
	Skills         map[string][]string `json:"skills"`
}

// PersonalInfo represents the contact header of a profile.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// Education represents a single education entry. GPA and Honors are optional.
type Education struct {
	Degree      string `json:"degree"`
	Major       string `json:"major"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

// Experience represents a single work experience entry.
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  []string `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Project represents a single project entry. Link is optional.
type Project struct {
	Name         string   `json:"name"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  []string `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// SkillCategories returns the profile's skill category names in a
// deterministic order. JSON objects do not preserve key order across a
// decode, so sorted names are the canonical iteration order for scoring
// and rendering.
func (p *Profile) SkillCategories() []string {
	categories := make([]string, 0, len(p.Skills))
	for name := range p.Skills {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	return categories
}
