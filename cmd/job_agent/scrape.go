package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-agent/internal/engine"
	"github.com/jonathan/job-agent/internal/jobdb"
	"github.com/jonathan/job-agent/internal/observability"
	"github.com/jonathan/job-agent/internal/profile"
	"github.com/jonathan/job-agent/internal/scraper"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape the job listing feed, score against a profile, and store new jobs",
	RunE:  runScrape,
}

var scrapeProfile string

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeProfile, "profile", "p", "", "Profile name to score against (required)")
	_ = scrapeCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	store := profile.NewStore(cfg.ProfileDir)
	eng, err := engine.New(store, scrapeProfile)
	if err != nil {
		return err
	}
	eng.WithThresholds(engine.Thresholds{High: cfg.HighThreshold, Medium: cfg.MediumThreshold})

	db, err := jobdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Fprintf(os.Stdout, "Scraping jobs from %s/%s...\n", cfg.RepoOwner, cfg.RepoName)
	s := scraper.New(cfg.RepoOwner, cfg.RepoName, cfg.RepoBranch)
	jobs, err := s.GetJobs(ctx)
	if err != nil {
		// Ingestion failure is reported, never fatal to the session.
		fmt.Fprintf(os.Stderr, "No jobs scraped: %v\n", err)
		return nil
	}
	fmt.Fprintf(os.Stdout, "Found %d raw jobs.\n", len(jobs))

	jobs = eng.CategorizeJobs(jobs)
	inserted, err := db.InsertJobs(ctx, jobs)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Inserted %d new unique jobs into the database.\n", inserted)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScrapeSummary(jobs, inserted)
		printer.PrintTopJobs(jobs)
	}
	return nil
}
