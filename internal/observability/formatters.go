// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/job-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScrapeSummary outputs how many jobs were scraped and how the fit
// categories are distributed.
func (p *Printer) PrintScrapeSummary(jobs []types.Job, inserted int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Scraped jobs:  %d\n", len(jobs)))
	sb.WriteString(fmt.Sprintf("Newly stored:  %d\n\n", inserted))

	counts := map[string]int{}
	for _, job := range jobs {
		counts[job.FitCategory]++
	}
	for _, category := range []string{types.FitHigh, types.FitMedium, types.FitLow, types.FitUnclassified} {
		if counts[category] > 0 {
			sb.WriteString(fmt.Sprintf("%-12s %d\n", category+":", counts[category]))
		}
	}

	p.printBox("SCRAPE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTopJobs outputs the best-scoring jobs of a batch, ordered by fit
// score descending. The input slice is not modified.
func (p *Printer) PrintTopJobs(jobs []types.Job) {
	if len(jobs) == 0 {
		return
	}

	ranked := make([]types.Job, len(jobs))
	copy(ranked, jobs)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].FitScore > ranked[b].FitScore
	})

	var sb strings.Builder
	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s at %s\n", i+1, job.Role, job.Company))
		sb.WriteString(fmt.Sprintf("    Score: %.0f (%s)\n", job.FitScore, job.FitCategory))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(jobs)-maxItemsToShow))
	}

	p.printBox("TOP SCORED JOBS", sb.String())
}

// PrintTailoringSummary outputs what survived tailoring for one job.
func (p *Printer) PrintTailoringSummary(t *types.TailoredResume) {
	if t == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Work experience entries: %d\n", len(t.WorkExperience)))
	sb.WriteString(fmt.Sprintf("Project entries:         %d\n", len(t.Projects)))

	skillCount := 0
	for _, skills := range t.Skills {
		skillCount += len(skills)
	}
	sb.WriteString(fmt.Sprintf("Skills (all kept):       %d in %d categories", skillCount, len(t.SkillOrder)))

	p.printBox("TAILORING SUMMARY", sb.String())
}
