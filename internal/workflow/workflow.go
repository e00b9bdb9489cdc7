// Package workflow drives the per-job application flow: tailor the resume,
// preview it, gate on explicit approval, render the PDF, and record the
// outcome on the job's status.
package workflow

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jonathan/job-agent/internal/engine"
	"github.com/jonathan/job-agent/internal/render"
	"github.com/jonathan/job-agent/internal/types"
)

// JobStore is the slice of the job repository the workflow needs.
type JobStore interface {
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// Renderer produces the output document from the tailored Markdown body.
type Renderer interface {
	RenderPDF(ctx context.Context, markdown, outPath string) error
}

// Workflow executes the application flow for selected jobs.
type Workflow struct {
	store       JobStore
	renderer    Renderer
	engine      *engine.Engine
	profileName string
	outputDir   string
	in          *bufio.Reader
	out         io.Writer
}

// New builds a workflow around an already-constructed engine. in and out are
// the interactive streams (stdin/stdout in the CLI).
func New(store JobStore, renderer Renderer, eng *engine.Engine, profileName, outputDir string, in io.Reader, out io.Writer) *Workflow {
	return &Workflow{
		store:       store,
		renderer:    renderer,
		engine:      eng,
		profileName: profileName,
		outputDir:   outputDir,
		in:          bufio.NewReader(in),
		out:         out,
	}
}

// rawDataTextKeys are the description-like fields pulled from a job's raw
// snapshot to enrich the tailoring text.
var rawDataTextKeys = []string{
	"description", "Description", "requirements", "qualifications", "responsibilities",
}

// JobDescription assembles the tailoring text for a job record: role,
// company, and location, plus any description-like fields found in the raw
// scraped snapshot.
func JobDescription(job map[string]any) string {
	parts := []string{
		stringField(job, "role"),
		stringField(job, "company"),
		stringField(job, "location"),
	}

	if raw := stringField(job, "raw_data"); raw != "" {
		var snapshot map[string]any
		if err := json.Unmarshal([]byte(raw), &snapshot); err == nil {
			for _, key := range rawDataTextKeys {
				if v, ok := snapshot[key].(string); ok && v != "" {
					parts = append(parts, v)
				}
			}
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// Execute runs the full flow for one job (as returned by GetJobByID) and
// reports whether a resume was rendered. Rejection and renderer failure are
// not errors; they are reported on out and recorded in the job status. The
// returned error covers storage failures only.
func (w *Workflow) Execute(ctx context.Context, job map[string]any) (bool, error) {
	jobID, ok := job["id"].(int64)
	if !ok {
		return false, fmt.Errorf("job record has no id")
	}
	role := stringField(job, "role")
	company := stringField(job, "company")

	fmt.Fprintf(w.out, "\n--- Initiating application for: %s at %s ---\n", role, company)
	fmt.Fprintf(w.out, "Job Link: %s\n", stringField(job, "link"))

	tailored := w.engine.Tailor(JobDescription(job))
	markdown := engine.RenderMarkdown(tailored)

	fmt.Fprintf(w.out, "\n--- Tailored Resume Preview ---\n")
	fmt.Fprint(w.out, markdown)
	fmt.Fprintf(w.out, "-------------------------------\n")

	fmt.Fprintf(w.out, "Do you approve this tailored resume and wish to proceed? (yes/no): ")
	answer, _ := w.in.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		fmt.Fprintf(w.out, "Application cancelled.\n")
		if err := w.store.UpdateStatus(ctx, jobID, types.StatusTailoringRejected); err != nil {
			return false, err
		}
		return false, nil
	}

	outPath := filepath.Join(w.outputDir, render.OutputFilename(w.profileName, company, role))
	fmt.Fprintf(w.out, "\nRendering PDF to %s\n", outPath)

	if err := w.renderer.RenderPDF(ctx, markdown, outPath); err != nil {
		fmt.Fprintf(w.out, "Failed to render PDF: %v\n", err)
		if updateErr := w.store.UpdateStatus(ctx, jobID, types.StatusPDFRenderFailed); updateErr != nil {
			return false, updateErr
		}
		return false, nil
	}

	fmt.Fprintf(w.out, "PDF rendered successfully.\n")
	if err := w.store.UpdateStatus(ctx, jobID, types.StatusResumeTailored); err != nil {
		return false, err
	}
	return true, nil
}

func stringField(job map[string]any, key string) string {
	if v, ok := job[key].(string); ok {
		return v
	}
	return ""
}
