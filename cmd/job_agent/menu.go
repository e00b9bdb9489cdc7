package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-agent/internal/config"
	"github.com/jonathan/job-agent/internal/engine"
	"github.com/jonathan/job-agent/internal/jobdb"
	"github.com/jonathan/job-agent/internal/observability"
	"github.com/jonathan/job-agent/internal/profile"
	"github.com/jonathan/job-agent/internal/render"
	"github.com/jonathan/job-agent/internal/scraper"
	"github.com/jonathan/job-agent/internal/types"
	"github.com/jonathan/job-agent/internal/workflow"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu session",
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
	// Bare invocation starts the interactive session.
	rootCmd.RunE = runMenu
}

// session holds the state of one interactive run: the shared database
// handle, the selected profile, and the interactive streams.
type session struct {
	cfg         *config.Config
	db          *jobdb.DB
	store       *profile.Store
	profileName string
	in          *bufio.Reader
	out         io.Writer
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	s := &session{
		cfg:   cfg,
		store: profile.NewStore(cfg.ProfileDir),
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
	}

	fmt.Fprintf(s.out, "--- Job Application Assistant ---\n")

	if err := s.selectOrCreateProfile(); err != nil {
		return err
	}
	// Profile-load failure at startup halts the program.
	if _, err := engine.New(s.store, s.profileName); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nUsing profile: %s\n", s.profileName)

	// One database handle per session, released on every exit path.
	db, err := jobdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	s.db = db

	return s.mainLoop(ctx)
}

func (s *session) readLine() string {
	line, _ := s.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (s *session) selectOrCreateProfile() error {
	for {
		names, err := s.store.List()
		if err != nil {
			return err
		}

		if len(names) == 0 {
			fmt.Fprintf(s.out, "\nNo profiles found. Let's create one.\n")
			fmt.Fprintf(s.out, "Enter a name for your new profile: ")
			name := s.readLine()
			if name == "" {
				continue
			}
			if err := createProfileInteractive(s.store, name, s.in, s.out); err != nil {
				fmt.Fprintf(s.out, "%v\n", err)
				continue
			}
			s.profileName = name
			return nil
		}

		fmt.Fprintf(s.out, "\nPlease select a profile or create a new one:\n")
		for i, name := range names {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, name)
		}
		fmt.Fprintf(s.out, "%d. Create New Profile\n", len(names)+1)
		fmt.Fprintf(s.out, "Enter your choice: ")

		choice := s.readLine()
		idx, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid input. Please enter a number.\n")
			continue
		}
		switch {
		case idx >= 1 && idx <= len(names):
			s.profileName = names[idx-1]
			return nil
		case idx == len(names)+1:
			fmt.Fprintf(s.out, "Enter a name for your new profile: ")
			name := s.readLine()
			if name == "" {
				continue
			}
			if err := createProfileInteractive(s.store, name, s.in, s.out); err != nil {
				fmt.Fprintf(s.out, "%v\n", err)
				continue
			}
			s.profileName = name
			return nil
		default:
			fmt.Fprintf(s.out, "Invalid choice. Please try again.\n")
		}
	}
}

func (s *session) mainLoop(ctx context.Context) error {
	for {
		fmt.Fprintf(s.out, "\n--- Main Menu ---\n")
		fmt.Fprintf(s.out, "1. Scrape New Jobs\n")
		fmt.Fprintf(s.out, "2. View and Select Job for Application\n")
		fmt.Fprintf(s.out, "3. Manage Profiles\n")
		fmt.Fprintf(s.out, "4. Exit\n")
		fmt.Fprintf(s.out, "Enter your choice: ")

		switch s.readLine() {
		case "1":
			s.scrapeJobs(ctx)
		case "2":
			if err := s.selectAndApply(ctx); err != nil {
				return err
			}
		case "3":
			s.manageProfiles()
		case "4":
			fmt.Fprintf(s.out, "Exiting. Goodbye!\n")
			return nil
		default:
			fmt.Fprintf(s.out, "Invalid choice. Please try again.\n")
		}
	}
}

// scrapeJobs fetches, scores, and stores listings. Failures are reported
// and the session continues.
func (s *session) scrapeJobs(ctx context.Context) {
	eng, err := engine.New(s.store, s.profileName)
	if err != nil {
		fmt.Fprintf(s.out, "Cannot score jobs: %v\n", err)
		return
	}
	eng.WithThresholds(engine.Thresholds{High: s.cfg.HighThreshold, Medium: s.cfg.MediumThreshold})

	fmt.Fprintf(s.out, "\nScraping jobs from %s/%s...\n", s.cfg.RepoOwner, s.cfg.RepoName)
	jobs, err := scraper.New(s.cfg.RepoOwner, s.cfg.RepoName, s.cfg.RepoBranch).GetJobs(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "No jobs scraped: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Found %d raw jobs.\n", len(jobs))

	jobs = eng.CategorizeJobs(jobs)
	inserted, err := s.db.InsertJobs(ctx, jobs)
	if err != nil {
		fmt.Fprintf(s.out, "Failed to store jobs: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Inserted %d new unique jobs into the database.\n", inserted)

	if s.cfg.Verbose {
		printer := observability.NewPrinter(s.out)
		printer.PrintScrapeSummary(jobs, inserted)
		printer.PrintTopJobs(jobs)
	}
}

// selectAndApply shows stored jobs grouped by fit category, lets the user
// pick one by ID, and runs the application flow for it.
func (s *session) selectAndApply(ctx context.Context) error {
	jobs, err := s.db.ListJobs(ctx, jobdb.Filter{})
	if err != nil {
		fmt.Fprintf(s.out, "Failed to list jobs: %v\n", err)
		return nil
	}
	if len(jobs) == 0 {
		fmt.Fprintf(s.out, "No jobs found in the database. Please scrape jobs first.\n")
		return nil
	}

	groups := map[string][]types.Job{}
	for _, job := range jobs {
		groups[job.FitCategory] = append(groups[job.FitCategory], job)
	}

	fmt.Fprintf(s.out, "\n--- Available Job Listings ---\n")
	for _, category := range []string{types.FitHigh, types.FitMedium, types.FitLow, types.FitUnclassified} {
		if len(groups[category]) == 0 {
			continue
		}
		fmt.Fprintf(s.out, "\n### %s Jobs ###\n", category)
		for _, job := range groups[category] {
			fmt.Fprintf(s.out, "  [%d] %s at %s (%s) - Fit Score: %.2f\n",
				job.ID, job.Role, job.Company, job.Location, job.FitScore)
		}
	}

	for {
		fmt.Fprintf(s.out, "\nEnter the ID of the job you want to select (or 'q' to quit): ")
		choice := s.readLine()
		if strings.EqualFold(choice, "q") {
			fmt.Fprintf(s.out, "Job selection cancelled.\n")
			return nil
		}
		id, err := strconv.ParseInt(choice, 10, 64)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid input. Please enter a number or 'q'.\n")
			continue
		}
		job, err := s.db.GetJobByID(ctx, id)
		if err != nil {
			return err
		}
		if job == nil {
			fmt.Fprintf(s.out, "Invalid Job ID. Please try again.\n")
			continue
		}

		fmt.Fprintf(s.out, "\nYou selected: %s at %s\n", job["role"], job["company"])

		eng, err := engine.New(s.store, s.profileName)
		if err != nil {
			fmt.Fprintf(s.out, "Cannot tailor resume: %v\n", err)
			return nil
		}
		eng.WithKeepConfig(engine.KeepConfig{Experience: s.cfg.KeepExperience, Projects: s.cfg.KeepProjects})

		wf := workflow.New(s.db, render.NewRenderer(), eng, s.profileName, s.cfg.OutputDir, s.in, s.out)
		if _, err := wf.Execute(ctx, job); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "\nReturning to main menu.\n")
		return nil
	}
}

func (s *session) manageProfiles() {
	for {
		fmt.Fprintf(s.out, "\nProfile Manager Menu:\n")
		fmt.Fprintf(s.out, "1. Create New Profile\n")
		fmt.Fprintf(s.out, "2. Edit Profile\n")
		fmt.Fprintf(s.out, "3. Display Profile\n")
		fmt.Fprintf(s.out, "4. List Profiles\n")
		fmt.Fprintf(s.out, "5. Validate Profile\n")
		fmt.Fprintf(s.out, "6. Back\n")
		fmt.Fprintf(s.out, "Enter your choice: ")

		switch s.readLine() {
		case "1":
			fmt.Fprintf(s.out, "Enter new profile name: ")
			name := s.readLine()
			if err := createProfileInteractive(s.store, name, s.in, s.out); err != nil {
				fmt.Fprintf(s.out, "%v\n", err)
			}
		case "2":
			fmt.Fprintf(s.out, "Enter profile name to edit: ")
			if err := editProfileInteractive(s.store, s.readLine(), s.in, s.out); err != nil {
				fmt.Fprintf(s.out, "%v\n", err)
			}
		case "3":
			fmt.Fprintf(s.out, "Enter profile name to display: ")
			s.displayProfile(s.readLine())
		case "4":
			names, err := s.store.List()
			if err != nil {
				fmt.Fprintf(s.out, "%v\n", err)
				continue
			}
			if len(names) == 0 {
				fmt.Fprintf(s.out, "No profiles found.\n")
				continue
			}
			fmt.Fprintf(s.out, "Available profiles:\n")
			for _, name := range names {
				fmt.Fprintf(s.out, "- %s\n", name)
			}
		case "5":
			fmt.Fprintf(s.out, "Enter profile name to validate: ")
			name := s.readLine()
			_, warning, err := s.store.Load(name)
			switch {
			case err != nil:
				fmt.Fprintf(s.out, "%v\n", err)
			case warning != "":
				fmt.Fprintf(s.out, "%s\n", warning)
			default:
				fmt.Fprintf(s.out, "Profile %q is valid.\n", name)
			}
		case "6":
			return
		default:
			fmt.Fprintf(s.out, "Invalid choice. Please try again.\n")
		}
	}
}

func (s *session) displayProfile(name string) {
	p, warning, err := s.store.Load(name)
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	if warning != "" {
		fmt.Fprintf(s.out, "Warning: %s\n", warning)
	}
	fmt.Fprintf(s.out, "\n--- Profile: %s ---\n", name)
	fmt.Fprintf(s.out, "Name:  %s\n", p.PersonalInfo.Name)
	fmt.Fprintf(s.out, "Email: %s\n", p.PersonalInfo.Email)
	fmt.Fprintf(s.out, "Education entries: %d, experience: %d, projects: %d\n",
		len(p.Education), len(p.WorkExperience), len(p.Projects))
	for _, category := range p.SkillCategories() {
		fmt.Fprintf(s.out, "%s: %s\n", category, strings.Join(p.Skills[category], ", "))
	}
}
