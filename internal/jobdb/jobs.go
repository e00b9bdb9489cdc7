package jobdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonathan/job-agent/internal/types"
)

// Filter narrows ListJobs results. Empty fields match everything.
type Filter struct {
	Status      string
	FitCategory string
}

// InsertJobs is the only bulk entry point. It enforces the (link, role)
// uniqueness invariant with a per-row existence check before each insert and
// returns the count of genuinely new records. Each insert commits
// independently; a failure aborts the batch but keeps rows already written.
func (db *DB) InsertJobs(ctx context.Context, jobs []types.Job) (int, error) {
	inserted := 0
	for _, job := range jobs {
		exists, err := db.jobExists(ctx, job.Link, job.Role)
		if err != nil {
			return inserted, err
		}
		if exists {
			continue
		}
		if err := db.insertJob(ctx, job); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func (db *DB) jobExists(ctx context.Context, link, role string) (bool, error) {
	var id int64
	err := db.conn.QueryRowContext(ctx,
		`SELECT id FROM jobs WHERE link = ? AND role = ?`, link, role,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check for existing job: %w", err)
	}
	return true, nil
}

func (db *DB) insertJob(ctx context.Context, job types.Job) error {
	if job.Status == "" {
		job.Status = types.StatusNew
	}
	if job.FitCategory == "" {
		job.FitCategory = types.FitUnclassified
	}
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO jobs (company, role, location, link, date_posted,
		                   original_category, fit_score, fit_category, status, raw_data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.Company, job.Role, job.Location, job.Link, job.DatePosted,
		job.OriginalCategory, job.FitScore, job.FitCategory, job.Status, job.RawData,
	)
	if err != nil {
		return fmt.Errorf("failed to insert job %q at %q: %w", job.Role, job.Company, err)
	}
	return nil
}

// ListJobs retrieves jobs matching the filter, ordered by fit score
// descending, then insertion order.
func (db *DB) ListJobs(ctx context.Context, filter Filter) ([]types.Job, error) {
	query := `SELECT id, company, role, location, link, date_posted,
	                 original_category, fit_score, fit_category, status
	          FROM jobs WHERE 1=1`
	args := make([]any, 0, 2)
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.FitCategory != "" {
		query += ` AND fit_category = ?`
		args = append(args, filter.FitCategory)
	}
	query += ` ORDER BY fit_score DESC, id ASC`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	jobs := make([]types.Job, 0)
	for rows.Next() {
		var j types.Job
		if err := rows.Scan(&j.ID, &j.Company, &j.Role, &j.Location, &j.Link,
			&j.DatePosted, &j.OriginalCategory, &j.FitScore, &j.FitCategory, &j.Status); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}
	return jobs, nil
}

// GetJobByID retrieves a single job as a column-keyed map, nil when absent.
func (db *DB) GetJobByID(ctx context.Context, id int64) (map[string]any, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, company, role, location, link, date_posted,
		        original_category, fit_score, fit_category, status, raw_data
		 FROM jobs WHERE id = ?`, id)

	var j types.Job
	var rawData sql.NullString
	err := row.Scan(&j.ID, &j.Company, &j.Role, &j.Location, &j.Link, &j.DatePosted,
		&j.OriginalCategory, &j.FitScore, &j.FitCategory, &j.Status, &rawData)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job %d: %w", id, err)
	}

	return map[string]any{
		"id":                j.ID,
		"company":           j.Company,
		"role":              j.Role,
		"location":          j.Location,
		"link":              j.Link,
		"date_posted":       j.DatePosted,
		"original_category": j.OriginalCategory,
		"fit_score":         j.FitScore,
		"fit_category":      j.FitCategory,
		"status":            j.Status,
		"raw_data":          rawData.String,
	}, nil
}

// UpdateStatus sets the workflow status of one job.
func (db *DB) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := db.conn.ExecContext(ctx,
		`UPDATE jobs SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status of job %d: %w", id, err)
	}
	return nil
}

// UpdateFit sets the fit score and category of one job.
func (db *DB) UpdateFit(ctx context.Context, id int64, score float64, category string) error {
	_, err := db.conn.ExecContext(ctx,
		`UPDATE jobs SET fit_score = ?, fit_category = ? WHERE id = ?`,
		score, category, id)
	if err != nil {
		return fmt.Errorf("failed to update fit of job %d: %w", id, err)
	}
	return nil
}
