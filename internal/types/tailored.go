package types

// TailoredResume is the derived, ephemeral result of tailoring a profile
// against one job description. Personal info and education are carried
// verbatim; experience and projects are filtered and reordered; skills keep
// every entry but are reordered within each category.
//
// SkillOrder carries the category iteration order so rendering is
// deterministic; it always matches Profile.SkillCategories of the source
// profile.
type TailoredResume struct {
	PersonalInfo   PersonalInfo        `json:"personal_info"`
	Education      []Education         `json:"education"`
	WorkExperience []Experience        `json:"work_experience"`
	Projects       []Project           `json:"projects"`
	Skills         map[string][]string `json:"skills"`
	SkillOrder     []string            `json:"skill_order"`
}
