package jobs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleListingsJSON = `[
	{
		"job_id": "abc123",
		"title": "Data Scientist",
		"company": "TechCorp",
		"skills_required": ["Python", "Machine Learning"],
		"location": "Remote",
		"employment_type": "Full-time",
		"recruiterId": "rec-1"
	},
	{
		"id": "77",
		"title": "Frontend Engineer",
		"company": "Acme",
		"skills": ["react", "css"],
		"employment": "part-time",
		"recruiterID": "rec-2"
	}
]`

func TestParseListings(t *testing.T) {
	listings, err := ParseListings([]byte(sampleListingsJSON))
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "abc123", listings[0].JobID)
	assert.Equal(t, []string{"Python", "Machine Learning"}, listings[0].SkillsRequired)
	assert.Equal(t, "rec-1", listings[0].RecruiterID)

	// Legacy field spellings land in the same struct fields.
	assert.Equal(t, "77", listings[1].ID)
	assert.Equal(t, []string{"react", "css"}, listings[1].Skills)
	assert.Equal(t, "part-time", listings[1].Employment)
	assert.Equal(t, "rec-2", listings[1].RecruiterID)
}

func TestParseListings_Malformed(t *testing.T) {
	_, err := ParseListings([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleListingsJSON), 0o644))

	listings, err := FileSource{Path: path}.Listings(context.Background())
	require.NoError(t, err)
	assert.Len(t, listings, 2)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}.Listings(context.Background())
	assert.Error(t, err)
}

func TestStaticSource(t *testing.T) {
	listings, err := ParseListings([]byte(sampleListingsJSON))
	require.NoError(t, err)

	got, err := StaticSource(listings).Listings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, listings, got)
}
