// Package profile provides the file-backed profile store: schema-validated
// load, save, create, and listing of named resume profiles.
package profile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/job-agent/internal/schemas"
	"github.com/jonathan/job-agent/internal/types"
)

//go:embed profile_schema.json
var schemaJSON []byte

// DefaultDir is the default directory for profile documents.
const DefaultDir = "profiles"

// ErrNotFound is returned when a named profile does not exist.
var ErrNotFound = errors.New("profile not found")

// ErrAlreadyExists is returned by Create when the profile name is taken.
var ErrAlreadyExists = errors.New("profile already exists")

// Store manages profile JSON documents under a single directory.
// One document per profile name.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. An empty dir uses DefaultDir.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{dir: dir}
}

// Path returns the document path for a profile name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Exists reports whether a profile document exists for the name.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// List returns the names of all stored profiles.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile directory %s: %w", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return names, nil
}

// Load reads a profile document. The profile is returned even when it fails
// schema validation; in that case warning carries the validation message and
// callers must treat the data as unvalidated. A missing or malformed file is
// an error.
func (s *Store) Load(name string) (*types.Profile, string, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("profile %q: %w", name, ErrNotFound)
		}
		return nil, "", fmt.Errorf("failed to read profile %q: %w", name, err)
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, "", fmt.Errorf("invalid JSON in profile %q: %w", name, err)
	}

	warning := ""
	if err := schemas.ValidateBytes(schemaJSON, data); err != nil {
		warning = fmt.Sprintf("profile %q is not schema-valid: %v", name, err)
	}

	return &p, warning, nil
}

// Save validates and writes a profile document, replacing any previous
// content. Data that fails schema validation is refused and nothing is
// written.
func (s *Store) Save(name string, p *types.Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile %q: %w", name, err)
	}

	if err := schemas.ValidateBytes(schemaJSON, data); err != nil {
		return fmt.Errorf("cannot save invalid profile %q: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create profile directory %s: %w", s.dir, err)
	}
	if err := os.WriteFile(s.Path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile %q: %w", name, err)
	}
	return nil
}

// Create saves a new profile document, seeding any nil sections so the
// result is schema-valid. It fails when the name is already taken.
func (s *Store) Create(name string, p *types.Profile) error {
	if s.Exists(name) {
		return fmt.Errorf("profile %q: %w", name, ErrAlreadyExists)
	}
	if p == nil {
		p = &types.Profile{}
	}
	if p.Education == nil {
		p.Education = []types.Education{}
	}
	if p.WorkExperience == nil {
		p.WorkExperience = []types.Experience{}
	}
	if p.Projects == nil {
		p.Projects = []types.Project{}
	}
	if p.Skills == nil {
		p.Skills = map[string][]string{}
	}
	return s.Save(name, p)
}

// Replace overwrites an existing profile with a raw JSON document: the
// edit path is full replacement, never a partial merge. It fails when the
// profile does not exist, when the document is not valid JSON, or when the
// result is not schema-valid; on failure the stored profile is untouched.
func (s *Store) Replace(name string, data []byte) error {
	if !s.Exists(name) {
		return fmt.Errorf("profile %q: %w", name, ErrNotFound)
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("invalid JSON for profile %q: %w", name, err)
	}
	return s.Save(name, &p)
}

// Validate checks a profile against the schema without writing it.
func (s *Store) Validate(p *types.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	return schemas.ValidateBytes(schemaJSON, data)
}
