// Package scraper provides listing ingestion: it fetches the job-listing
// README of a GitHub repository and extracts job records from its HTML
// tables.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/jonathan/job-agent/internal/fetch"
	"github.com/jonathan/job-agent/internal/types"
)

// Defaults for the listing source repository.
const (
	DefaultRepoOwner = "SimplifyJobs"
	DefaultRepoName  = "New-Grad-Positions"
	DefaultBranch    = "dev"
)

// UncategorizedLabel is assigned when a table has no preceding heading.
const UncategorizedLabel = "Uncategorized"

// Scraper fetches and parses one job-listing document.
type Scraper struct {
	RepoOwner string
	RepoName  string
	Branch    string
	FetchOpts *fetch.Options
}

// New creates a Scraper. Empty arguments fall back to the defaults.
func New(owner, repo, branch string) *Scraper {
	if owner == "" {
		owner = DefaultRepoOwner
	}
	if repo == "" {
		repo = DefaultRepoName
	}
	if branch == "" {
		branch = DefaultBranch
	}
	return &Scraper{RepoOwner: owner, RepoName: repo, Branch: branch}
}

// ReadmeURL returns the raw README URL for the configured repository.
func (s *Scraper) ReadmeURL() string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/README.md",
		s.RepoOwner, s.RepoName, s.Branch)
}

// GetJobs fetches the listing document and extracts job records. Every job
// of one call carries the same scrape batch ID in its raw snapshot. A fetch
// or parse failure returns an empty slice together with the error; callers
// report it and continue.
func (s *Scraper) GetJobs(ctx context.Context) ([]types.Job, error) {
	result, err := fetch.URL(ctx, s.ReadmeURL(), s.FetchOpts)
	if err != nil {
		return nil, err
	}

	batchID := uuid.New().String()
	jobs, err := Parse(result.Body, batchID)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ParseError represents a failure to parse the listing document.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("listing parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("listing parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// headerMap translates listing table headers to job record fields.
var headerMap = map[string]string{
	"Company":     "company",
	"Role":        "role",
	"Location":    "location",
	"Application": "link",
	"Age":         "date_posted",
}

// Parse extracts job records from the HTML tables of a listing document.
// Each table is tagged with the text of its nearest preceding h2/h3 heading
// as the original category. Rows whose cell count does not match the header
// count are skipped.
func Parse(htmlContent, batchID string) ([]types.Job, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ParseError{Message: "failed to parse HTML", Cause: err}
	}

	jobs := make([]types.Job, 0)

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		category := UncategorizedLabel
		if heading := table.PrevAllFiltered("h2, h3").First(); heading.Length() > 0 {
			category = strings.TrimSpace(heading.Text())
		}

		headers := make([]string, 0)
		table.Find("thead th").Each(func(_ int, th *goquery.Selection) {
			headers = append(headers, mapHeader(strings.TrimSpace(th.Text())))
		})
		if len(headers) == 0 {
			return
		}

		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() != len(headers) {
				return
			}

			raw := make(map[string]string, len(headers)+2)
			cells.Each(func(i int, cell *goquery.Selection) {
				raw[headers[i]] = extractCell(headers[i], cell)
			})
			raw["original_category"] = category
			raw["scrape_batch"] = batchID

			rawJSON, err := json.Marshal(raw)
			if err != nil {
				return
			}

			jobs = append(jobs, types.Job{
				Company:          raw["company"],
				Role:             raw["role"],
				Location:         raw["location"],
				Link:             raw["link"],
				DatePosted:       raw["date_posted"],
				OriginalCategory: category,
				FitScore:         types.UnscoredFitScore,
				FitCategory:      types.FitUnclassified,
				Status:           types.StatusNew,
				RawData:          string(rawJSON),
			})
		})
	})

	return jobs, nil
}

func mapHeader(header string) string {
	if mapped, ok := headerMap[header]; ok {
		return mapped
	}
	return strings.ReplaceAll(strings.ToLower(header), " ", "_")
}

// extractCell applies the per-field cell rules: link cells resolve to an
// anchor target when present, company cells drop pictographic runes, and
// location cells expand a details widget to its full multi-line text.
func extractCell(field string, cell *goquery.Selection) string {
	switch field {
	case "link":
		if href, ok := cell.Find("a").First().Attr("href"); ok {
			return href
		}
		return strings.TrimSpace(cell.Text())
	case "company":
		return strings.TrimSpace(stripEmoji(cell.Text()))
	case "location":
		if details := cell.Find("details"); details.Length() > 0 {
			expanded := details.Clone()
			expanded.Find("summary").Remove()
			return textWithBreaks(expanded)
		}
		return textWithBreaks(cell)
	default:
		return strings.TrimSpace(cell.Text())
	}
}

// textWithBreaks returns the visible text of a selection with <br> elements
// preserved as newlines.
func textWithBreaks(sel *goquery.Selection) string {
	html, err := sel.Html()
	if err != nil {
		return strings.TrimSpace(sel.Text())
	}
	for _, br := range []string{"<br>", "<br/>", "<br />"} {
		html = strings.ReplaceAll(html, br, "\n")
	}
	inner, err := goquery.NewDocumentFromReader(strings.NewReader("<div>" + html + "</div>"))
	if err != nil {
		return strings.TrimSpace(sel.Text())
	}
	return strings.TrimSpace(inner.Text())
}

// emojiRanges covers the pictographic blocks that decorate company names in
// the listing (flames, stars, flags and similar).
var emojiRanges = [][2]rune{
	{0x1F1E6, 0x1F1FF}, // regional indicators
	{0x1F300, 0x1F5FF}, // misc symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map symbols
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA70, 0x1FAFF}, // extended symbols
	{0x2600, 0x27BF},   // misc symbols and dingbats
	{0x2B00, 0x2BFF},   // misc symbols and arrows (stars)
	{0xFE0E, 0xFE0F},   // variation selectors
}

func stripEmoji(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		emoji := false
		for _, rng := range emojiRanges {
			if r >= rng[0] && r <= rng[1] {
				emoji = true
				break
			}
		}
		if !emoji {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
