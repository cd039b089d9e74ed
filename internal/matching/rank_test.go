package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/applyai/resume2job/internal/types"
)

func TestRank_SortsByCompatibilityDescending(t *testing.T) {
	engine := NewEngine(nil)
	fields := types.ResumeFields{Skills: []string{"python", "sql"}}
	listings := []types.JobListing{
		{Title: "No Match", Company: "A", SkillsRequired: []string{"rust"}},
		{Title: "Full Match", Company: "B", SkillsRequired: []string{"python", "sql"}},
		{Title: "Half Match", Company: "C", SkillsRequired: []string{"python", "rust"}},
	}

	ranked := engine.Rank(fields, listings)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Full Match", ranked[0].Title)
	assert.Equal(t, "Half Match", ranked[1].Title)
	assert.Equal(t, "No Match", ranked[2].Title)
}

func TestRank_TiesKeepSourceOrder(t *testing.T) {
	engine := NewEngine(nil)
	fields := types.ResumeFields{Skills: []string{"python"}}
	listings := []types.JobListing{
		{Title: "First", SkillsRequired: []string{"python"}},
		{Title: "Second", SkillsRequired: []string{"python"}},
	}

	ranked := engine.Rank(fields, listings)

	assert.Equal(t, "First", ranked[0].Title)
	assert.Equal(t, "Second", ranked[1].Title)
}

func TestRank_AssignsIndexIDs(t *testing.T) {
	engine := NewEngine(nil)
	listings := []types.JobListing{
		{Title: "A"},
		{Title: "B", ID: "id-7"},
		{Title: "C", JobID: "job-3"},
	}

	ranked := engine.Rank(types.ResumeFields{}, listings)

	// All compatibilities are zero, so source order holds.
	assert.Equal(t, "0", ranked[0].JobID)
	assert.Equal(t, "id-7", ranked[1].JobID)
	assert.Equal(t, "id-7", ranked[1].ID)
	assert.Equal(t, "job-3", ranked[2].JobID)
	assert.Equal(t, "job-3", ranked[2].ID)
}

func TestNormalizeListing_SkillsFallback(t *testing.T) {
	job := NormalizeListing(types.JobListing{Skills: []string{"python"}}, 0)

	assert.Equal(t, []string{"python"}, job.SkillsRequired)
	assert.Nil(t, job.Skills)
}

func TestNormalizeListing_SkillsRequiredWins(t *testing.T) {
	job := NormalizeListing(types.JobListing{
		SkillsRequired: []string{"go"},
		Skills:         []string{"python"},
	}, 0)

	assert.Equal(t, []string{"go"}, job.SkillsRequired)
}

func TestCanonicalEmployment(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"full-time", "Full Time"},
		{"FULL_TIME", "Full Time"},
		{"Fulltime", "Full Time"},
		{"part-time", "Part Time"},
		{"Internship", "Internship"},
		{"summer intern", "Internship"},
		{"contract", "contract"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalEmployment(tt.raw), "raw=%q", tt.raw)
	}
}

func TestNormalizeListing_EmploymentFallbackField(t *testing.T) {
	job := NormalizeListing(types.JobListing{Employment: "full time"}, 0)

	assert.Equal(t, "Full Time", job.EmploymentType)
	assert.Empty(t, job.Employment)
}
