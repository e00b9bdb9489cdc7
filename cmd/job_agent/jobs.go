package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-agent/internal/jobdb"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List stored jobs, optionally filtered by status and fit category",
	RunE:  runJobs,
}

var (
	jobsStatus string
	jobsFit    string
)

func init() {
	jobsCmd.Flags().StringVar(&jobsStatus, "status", "", "Filter by workflow status (e.g. new, applied)")
	jobsCmd.Flags().StringVar(&jobsFit, "fit", "", "Filter by fit category (High Fit, Medium Fit, Low Fit)")

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	db, err := jobdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	jobs, err := db.ListJobs(ctx, jobdb.Filter{Status: jobsStatus, FitCategory: jobsFit})
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintf(os.Stdout, "No jobs found. Run 'job_agent scrape' first.\n")
		return nil
	}

	for _, job := range jobs {
		fmt.Fprintf(os.Stdout, "[%d] %s at %s (%s) - %s, score %.0f, status %s\n",
			job.ID, job.Role, job.Company, job.Location, job.FitCategory, job.FitScore, job.Status)
	}
	return nil
}
