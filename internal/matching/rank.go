package matching

import (
	"sort"
	"strconv"
	"strings"

	"github.com/applyai/resume2job/internal/types"
)

// Rank scores every listing and returns them sorted by compatibility,
// highest first. Listings are canonicalized before scoring: identifier
// and skills fallbacks are resolved and the employment type is mapped
// to its display form. Ties keep the source order.
func (e *Engine) Rank(fields types.ResumeFields, listings []types.JobListing) []types.ScoredJob {
	scored := make([]types.ScoredJob, 0, len(listings))
	for idx, listing := range listings {
		scored = append(scored, e.Score(fields, NormalizeListing(listing, idx)))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Compatibility > scored[j].Compatibility
	})
	return scored
}

// NormalizeListing resolves legacy field fallbacks on a listing. The
// job id falls back to id and then to the listing's index; skills fall
// back from skills_required to skills; employment falls back from
// employment_type to employment and is canonicalized.
func NormalizeListing(job types.JobListing, idx int) types.JobListing {
	if job.JobID == "" {
		job.JobID = job.ID
	}
	if job.JobID == "" {
		job.JobID = strconv.Itoa(idx)
	}
	if job.ID == "" {
		job.ID = job.JobID
	}

	if len(job.SkillsRequired) == 0 {
		job.SkillsRequired = job.Skills
	}
	job.Skills = nil

	raw := job.EmploymentType
	if raw == "" {
		raw = job.Employment
	}
	job.EmploymentType = canonicalEmployment(raw)
	job.Employment = ""

	return job
}

// canonicalEmployment maps free-form employment type strings onto the
// three display values. Hyphens and underscores are treated as spaces,
// and the full/part/intern checks run in that order. Unrecognized
// values pass through trimmed.
func canonicalEmployment(raw string) string {
	emp := strings.ToLower(strings.TrimSpace(raw))
	emp = strings.ReplaceAll(emp, "-", " ")
	emp = strings.ReplaceAll(emp, "_", " ")
	switch {
	case strings.Contains(emp, "full"):
		return "Full Time"
	case strings.Contains(emp, "part"):
		return "Part Time"
	case strings.Contains(emp, "intern"):
		return "Internship"
	default:
		return strings.TrimSpace(raw)
	}
}
