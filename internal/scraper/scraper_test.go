package scraper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-agent/internal/types"
)

const listingHTML = `
<h2>Software Engineering</h2>
<table>
  <thead>
    <tr><th>Company</th><th>Role</th><th>Location</th><th>Application</th><th>Age</th></tr>
  </thead>
  <tbody>
    <tr>
      <td>🔥 Acme Corp</td>
      <td>Software Engineer</td>
      <td>NYC</td>
      <td><a href="https://acme.example/apply">Apply</a></td>
      <td>2d</td>
    </tr>
    <tr>
      <td>Beta Inc</td>
      <td>Backend Engineer</td>
      <td><details><summary>3 locations</summary>Austin, TX<br>Seattle, WA<br>Remote</details></td>
      <td>apply by email</td>
      <td>5d</td>
    </tr>
    <tr>
      <td>Broken Row</td>
      <td>Missing cells</td>
    </tr>
  </tbody>
</table>
<h3>Data Science</h3>
<table>
  <thead>
    <tr><th>Company</th><th>Role</th><th>Location</th><th>Application</th><th>Age</th></tr>
  </thead>
  <tbody>
    <tr>
      <td>Gamma</td>
      <td>Data Scientist</td>
      <td>Remote</td>
      <td><a href="https://gamma.example/ds">Apply</a></td>
      <td>1d</td>
    </tr>
  </tbody>
</table>
`

func TestParse_ExtractsJobsFromTables(t *testing.T) {
	jobs, err := Parse(listingHTML, "batch-1")
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	first := jobs[0]
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Software Engineer", first.Role)
	assert.Equal(t, "NYC", first.Location)
	assert.Equal(t, "https://acme.example/apply", first.Link)
	assert.Equal(t, "2d", first.DatePosted)
	assert.Equal(t, "Software Engineering", first.OriginalCategory)
	assert.Equal(t, types.UnscoredFitScore, first.FitScore)
	assert.Equal(t, types.FitUnclassified, first.FitCategory)
	assert.Equal(t, types.StatusNew, first.Status)
}

func TestParse_CategoryFromNearestHeading(t *testing.T) {
	jobs, err := Parse(listingHTML, "batch-1")
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, "Software Engineering", jobs[0].OriginalCategory)
	assert.Equal(t, "Data Science", jobs[2].OriginalCategory)
}

func TestParse_NoHeadingIsUncategorized(t *testing.T) {
	html := `<table>
		<thead><tr><th>Company</th><th>Role</th></tr></thead>
		<tbody><tr><td>Solo</td><td>Engineer</td></tr></tbody>
	</table>`

	jobs, err := Parse(html, "batch-1")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, UncategorizedLabel, jobs[0].OriginalCategory)
}

func TestParse_LinkFallsBackToText(t *testing.T) {
	jobs, err := Parse(listingHTML, "batch-1")
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, "apply by email", jobs[1].Link)
}

func TestParse_DetailsLocationExpandsToMultiLine(t *testing.T) {
	jobs, err := Parse(listingHTML, "batch-1")
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, "Austin, TX\nSeattle, WA\nRemote", jobs[1].Location)
}

func TestParse_SkipsRowsWithMismatchedCellCount(t *testing.T) {
	jobs, err := Parse(listingHTML, "batch-1")
	require.NoError(t, err)

	for _, job := range jobs {
		assert.NotEqual(t, "Broken Row", job.Company)
	}
}

func TestParse_RawDataCarriesBatchID(t *testing.T) {
	jobs, err := Parse(listingHTML, "my-batch")
	require.NoError(t, err)
	require.NotEmpty(t, jobs)

	var raw map[string]string
	require.NoError(t, json.Unmarshal([]byte(jobs[0].RawData), &raw))
	assert.Equal(t, "my-batch", raw["scrape_batch"])
	assert.Equal(t, "Software Engineering", raw["original_category"])
	assert.Equal(t, "Acme Corp", raw["company"])
}

func TestParse_EmptyDocument(t *testing.T) {
	jobs, err := Parse("", "batch-1")
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestMapHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Company", "company"},
		{"Role", "role"},
		{"Application", "link"},
		{"Age", "date_posted"},
		{"Sponsorship Status", "sponsorship_status"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, mapHeader(tt.header))
		})
	}
}

func TestStripEmoji(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"flame prefix", "🔥 Acme", " Acme"},
		{"plain text untouched", "Acme Corp", "Acme Corp"},
		{"star and flag", "⭐ Acme 🇺🇸", " Acme "},
		{"unicode letters kept", "Café Müller", "Café Müller"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripEmoji(tt.input))
		})
	}
}

func TestNew_DefaultsAndReadmeURL(t *testing.T) {
	s := New("", "", "")
	assert.Equal(t, DefaultRepoOwner, s.RepoOwner)
	assert.Equal(t,
		"https://raw.githubusercontent.com/SimplifyJobs/New-Grad-Positions/dev/README.md",
		s.ReadmeURL())

	custom := New("owner", "repo", "main")
	assert.Equal(t, "https://raw.githubusercontent.com/owner/repo/main/README.md", custom.ReadmeURL())
}
