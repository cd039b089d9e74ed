package jobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/applyai/resume2job/internal/types"
)

// DB wraps a PostgreSQL connection pool serving the job listings table.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Listings returns all stored job listings, newest first.
func (db *DB) Listings(ctx context.Context) ([]types.JobListing, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT job_id, title, company, description,
		        skills_required, experience_required, education_required,
		        location, employment_type, link, recruiter_id
		 FROM job_listings
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query job listings: %w", err)
	}
	defer rows.Close()

	var listings []types.JobListing
	for rows.Next() {
		var job types.JobListing
		if err := rows.Scan(
			&job.JobID, &job.Title, &job.Company, &job.Description,
			&job.SkillsRequired, &job.ExperienceRequired, &job.EducationRequired,
			&job.Location, &job.EmploymentType, &job.Link, &job.RecruiterID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job listing: %w", err)
		}
		listings = append(listings, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job listings: %w", err)
	}
	return listings, nil
}

// GetListing returns one listing by job id, or nil when absent.
func (db *DB) GetListing(ctx context.Context, jobID string) (*types.JobListing, error) {
	var job types.JobListing
	err := db.pool.QueryRow(ctx,
		`SELECT job_id, title, company, description,
		        skills_required, experience_required, education_required,
		        location, employment_type, link, recruiter_id
		 FROM job_listings WHERE job_id = $1`,
		jobID,
	).Scan(
		&job.JobID, &job.Title, &job.Company, &job.Description,
		&job.SkillsRequired, &job.ExperienceRequired, &job.EducationRequired,
		&job.Location, &job.EmploymentType, &job.Link, &job.RecruiterID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job listing %s: %w", jobID, err)
	}
	return &job, nil
}

// SaveListing stores a listing and returns its job id. A missing job id
// gets a generated UUID.
func (db *DB) SaveListing(ctx context.Context, job types.JobListing) (string, error) {
	if job.JobID == "" {
		job.JobID = uuid.New().String()
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO job_listings
		    (job_id, title, company, description,
		     skills_required, experience_required, education_required,
		     location, employment_type, link, recruiter_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (job_id) DO UPDATE SET
		     title = $2, company = $3, description = $4,
		     skills_required = $5, experience_required = $6, education_required = $7,
		     location = $8, employment_type = $9, link = $10, recruiter_id = $11`,
		job.JobID, job.Title, job.Company, job.Description,
		job.SkillsRequired, job.ExperienceRequired, job.EducationRequired,
		job.Location, job.EmploymentType, job.Link, job.RecruiterID,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save job listing: %w", err)
	}
	return job.JobID, nil
}
