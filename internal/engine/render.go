package engine

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-agent/internal/types"
)

// RenderMarkdown transforms a tailored resume into a single Markdown
// document body: a name/contact header followed by the fixed section order
// Education, Work Experience, Projects, Skills. Empty sections still render
// their heading.
func RenderMarkdown(t *types.TailoredResume) string {
	var md strings.Builder

	md.WriteString(fmt.Sprintf("# %s\n\n", t.PersonalInfo.Name))
	contact := []string{
		fmt.Sprintf("**Email:** %s", t.PersonalInfo.Email),
		fmt.Sprintf("**Phone:** %s", t.PersonalInfo.Phone),
	}
	if t.PersonalInfo.LinkedIn != "" {
		contact = append(contact, fmt.Sprintf("**LinkedIn:** %s", t.PersonalInfo.LinkedIn))
	}
	if t.PersonalInfo.GitHub != "" {
		contact = append(contact, fmt.Sprintf("**GitHub:** %s", t.PersonalInfo.GitHub))
	}
	md.WriteString(strings.Join(contact, " | "))
	md.WriteString("\n\n")

	md.WriteString("## Education\n")
	for _, edu := range t.Education {
		md.WriteString(fmt.Sprintf("- **%s** in %s\n", edu.Degree, edu.Major))
		md.WriteString(fmt.Sprintf("  - %s, %s (%s)\n", edu.Institution, edu.Location, dateRange(edu.StartDate, edu.EndDate)))
		if edu.GPA != "" {
			md.WriteString(fmt.Sprintf("  - GPA: %s\n", edu.GPA))
		}
		if edu.Honors != "" {
			md.WriteString(fmt.Sprintf("  - Honors: %s\n", edu.Honors))
		}
	}
	md.WriteString("\n")

	md.WriteString("## Work Experience\n")
	for _, exp := range t.WorkExperience {
		md.WriteString(fmt.Sprintf("### %s at %s\n", exp.Title, exp.Company))
		md.WriteString(fmt.Sprintf("**%s** | %s\n", exp.Location, dateRange(exp.StartDate, exp.EndDate)))
		for _, line := range exp.Description {
			md.WriteString(fmt.Sprintf("- %s\n", line))
		}
		if len(exp.Technologies) > 0 {
			md.WriteString(fmt.Sprintf("- **Technologies:** %s\n", strings.Join(exp.Technologies, ", ")))
		}
		md.WriteString("\n")
	}
	if len(t.WorkExperience) == 0 {
		md.WriteString("\n")
	}

	md.WriteString("## Projects\n")
	for _, proj := range t.Projects {
		md.WriteString(fmt.Sprintf("### %s\n", proj.Name))
		md.WriteString(fmt.Sprintf("**%s**\n", dateRange(proj.StartDate, proj.EndDate)))
		for _, line := range proj.Description {
			md.WriteString(fmt.Sprintf("- %s\n", line))
		}
		if len(proj.Technologies) > 0 {
			md.WriteString(fmt.Sprintf("- **Technologies:** %s\n", strings.Join(proj.Technologies, ", ")))
		}
		if proj.Link != "" {
			md.WriteString(fmt.Sprintf("- **Link:** %s\n", proj.Link))
		}
		md.WriteString("\n")
	}
	if len(t.Projects) == 0 {
		md.WriteString("\n")
	}

	md.WriteString("## Skills\n")
	for _, category := range t.SkillOrder {
		skills := t.Skills[category]
		if len(skills) == 0 {
			continue
		}
		md.WriteString(fmt.Sprintf("**%s:** %s\n", category, strings.Join(skills, ", ")))
	}
	md.WriteString("\n")

	return md.String()
}

func dateRange(start, end string) string {
	if end == "" {
		end = "Present"
	}
	return fmt.Sprintf("%s - %s", start, end)
}
