package types

// Fit category constants assigned by scoring.
const (
	FitHigh         = "High Fit"
	FitMedium       = "Medium Fit"
	FitLow          = "Low Fit"
	FitUnclassified = "unclassified"
)

// Job status constants used by the application workflow. Status is free
// text in storage; these are the values the workflow writes.
const (
	StatusNew               = "new"
	StatusTailoringRejected = "tailoring_rejected"
	StatusResumeTailored    = "resume_tailored"
	StatusPDFRenderFailed   = "pdf_render_failed"
	StatusApplied           = "applied"
)

// UnscoredFitScore marks a job that has not been scored against a profile.
const UnscoredFitScore = -1.0

// Job represents one scraped job posting with mutable scoring and
// workflow state. ID is assigned by the repository on insert.
type Job struct {
	ID               int64   `json:"id"`
	Company          string  `json:"company"`
	Role             string  `json:"role"`
	Location         string  `json:"location"`
	Link             string  `json:"link"`
	DatePosted       string  `json:"date_posted"`
	OriginalCategory string  `json:"original_category"`
	FitScore         float64 `json:"fit_score"`
	FitCategory      string  `json:"fit_category"`
	Status           string  `json:"status"`
	RawData          string  `json:"raw_data,omitempty"`
}
