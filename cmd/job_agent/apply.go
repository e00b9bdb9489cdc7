package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-agent/internal/engine"
	"github.com/jonathan/job-agent/internal/jobdb"
	"github.com/jonathan/job-agent/internal/observability"
	"github.com/jonathan/job-agent/internal/profile"
	"github.com/jonathan/job-agent/internal/render"
	"github.com/jonathan/job-agent/internal/workflow"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Run the application flow for one stored job",
	Long:  "Tailor the resume for one stored job, preview it, ask for approval, render the PDF, and update the job status.",
	RunE:  runApply,
}

var (
	applyJobID   int64
	applyProfile string
)

func init() {
	applyCmd.Flags().Int64Var(&applyJobID, "id", 0, "Job ID to apply for (required)")
	applyCmd.Flags().StringVarP(&applyProfile, "profile", "p", "", "Profile name to tailor with (required)")
	_ = applyCmd.MarkFlagRequired("id")
	_ = applyCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	store := profile.NewStore(cfg.ProfileDir)
	eng, err := engine.New(store, applyProfile)
	if err != nil {
		return err
	}
	eng.WithKeepConfig(engine.KeepConfig{Experience: cfg.KeepExperience, Projects: cfg.KeepProjects})

	db, err := jobdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	job, err := db.GetJobByID(ctx, applyJobID)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("no job with ID %d", applyJobID)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintTailoringSummary(eng.Tailor(workflow.JobDescription(job)))
	}

	wf := workflow.New(db, render.NewRenderer(), eng, applyProfile, cfg.OutputDir, os.Stdin, os.Stdout)
	_, err = wf.Execute(ctx, job)
	return err
}
