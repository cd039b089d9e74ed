// Package jobs loads and validates job listings for matching. Listings
// come from inline JSON, a file, or the Postgres listings table.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/applyai/resume2job/internal/types"
)

// Source delivers the job listings a match request runs against.
type Source interface {
	Listings(ctx context.Context) ([]types.JobListing, error)
}

// ParseListings decodes a JSON array of listings, as submitted inline
// with a match request.
func ParseListings(data []byte) ([]types.JobListing, error) {
	var listings []types.JobListing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("failed to parse job listings: %w", err)
	}
	return listings, nil
}

// FileSource reads listings from a JSON file.
type FileSource struct {
	Path string
}

// Listings loads and decodes the file.
func (s FileSource) Listings(_ context.Context) ([]types.JobListing, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job listings file: %w", err)
	}
	return ParseListings(data)
}

// StaticSource serves a fixed slice of listings.
type StaticSource []types.JobListing

// Listings returns the slice unchanged.
func (s StaticSource) Listings(_ context.Context) ([]types.JobListing, error) {
	return s, nil
}
