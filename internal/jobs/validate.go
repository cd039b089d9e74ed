package jobs

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/applyai/resume2job/internal/types"
)

// ValidateListing checks the structural constraints on a listing:
// title and company are required, and a link must be a URL when set.
func ValidateListing(job types.JobListing) error {
	validate := validator.New()
	return validate.Struct(job)
}

// ValidateListings validates a batch, reporting the index of the first
// invalid listing.
func ValidateListings(listings []types.JobListing) error {
	for i, job := range listings {
		if err := ValidateListing(job); err != nil {
			return fmt.Errorf("listing %d: %w", i, err)
		}
	}
	return nil
}
