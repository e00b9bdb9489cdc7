// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Defaults for scoring and tailoring behavior.
const (
	DefaultHighThreshold   = 5.0
	DefaultMediumThreshold = 2.0
	DefaultKeepExperience  = 3
	DefaultKeepProjects    = 2
	DefaultDatabasePath    = "jobs.db"
	DefaultOutputDir       = "output_resumes"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. Missing values use defaults; a handful can be overridden via
// environment variables (see FromEnv).
type Config struct {
	// Paths
	ProfileDir   string `json:"profile_dir,omitempty"`   // Directory holding profile JSON documents
	DatabasePath string `json:"database_path,omitempty"` // SQLite database file
	OutputDir    string `json:"output_dir,omitempty"`    // Directory for rendered resume PDFs

	// Listing source
	RepoOwner  string `json:"repo_owner,omitempty"` // GitHub owner of the listing repository
	RepoName   string `json:"repo_name,omitempty"`  // GitHub repository name
	RepoBranch string `json:"repo_branch,omitempty"`

	// Scoring thresholds: score >= HighThreshold is High Fit,
	// MediumThreshold <= score < HighThreshold is Medium Fit.
	HighThreshold   float64 `json:"high_threshold,omitempty" validate:"gtefield=MediumThreshold"`
	MediumThreshold float64 `json:"medium_threshold,omitempty" validate:"gte=0"`

	// Tailoring keep counts: a section with at most this many entries is
	// kept whole even when nothing matches the job keywords.
	KeepExperience int `json:"keep_experience,omitempty" validate:"gte=0"`
	KeepProjects   int `json:"keep_projects,omitempty" validate:"gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed scoring/tailoring information
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		ProfileDir:      "profiles",
		DatabasePath:    DefaultDatabasePath,
		OutputDir:       DefaultOutputDir,
		RepoOwner:       "SimplifyJobs",
		RepoName:        "New-Grad-Positions",
		RepoBranch:      "dev",
		HighThreshold:   DefaultHighThreshold,
		MediumThreshold: DefaultMediumThreshold,
		KeepExperience:  DefaultKeepExperience,
		KeepProjects:    DefaultKeepProjects,
	}
}

// Load reads configuration from a JSON file over the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// FromEnv applies environment variable overrides:
// JOB_AGENT_DB, JOB_AGENT_PROFILE_DIR, JOB_AGENT_OUTPUT_DIR.
func (c *Config) FromEnv() {
	if v := os.Getenv("JOB_AGENT_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("JOB_AGENT_PROFILE_DIR"); v != "" {
		c.ProfileDir = v
	}
	if v := os.Getenv("JOB_AGENT_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
}

// Validate checks threshold ordering and keep counts using the validator.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
