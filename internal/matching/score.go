// Package matching scores job listings against extracted resume fields
// and ranks them by weighted compatibility.
package matching

import (
	"math"
	"strings"

	"github.com/applyai/resume2job/internal/fuzzy"
	"github.com/applyai/resume2job/internal/skills"
	"github.com/applyai/resume2job/internal/types"
)

// Compatibility weights: skills dominate, experience and education
// refine the ordering.
const (
	skillWeight = 0.6
	expWeight   = 0.25
	eduWeight   = 0.15

	fuzzyCutoff = 0.8
)

// Engine computes compatibility scores using a shared skill table.
type Engine struct {
	table *skills.Table
}

// NewEngine returns an Engine. A nil table selects the built-in one.
func NewEngine(table *skills.Table) *Engine {
	if table == nil {
		table = skills.DefaultTable()
	}
	return &Engine{table: table}
}

// Score computes all compatibility components for one listing. The
// listing is embedded unchanged in the result.
func (e *Engine) Score(fields types.ResumeFields, job types.JobListing) types.ScoredJob {
	jobSkills := job.SkillsRequired
	if len(jobSkills) == 0 {
		jobSkills = job.Skills
	}

	skillScore, matched, missing := e.matchSkills(fields.Skills, jobSkills)
	expScore := keywordScore(experienceText(fields.Experience), job.ExperienceRequired)
	eduScore := keywordScore(educationText(fields.Education), job.EducationRequired)

	return types.ScoredJob{
		JobListing:    job,
		Compatibility: round2(skillWeight*skillScore + expWeight*expScore + eduWeight*eduScore),
		SkillScore:    skillScore,
		ExpScore:      expScore,
		EduScore:      eduScore,
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

// matchSkills runs a single pass over the job's requirements: each
// unique normalized requirement is matched exactly against the
// normalized resume skills, then fuzzily. Matched and missing carry the
// listing's original casing. The score is the fraction of required
// skills covered, as a percentage rounded to two decimals.
func (e *Engine) matchSkills(resumeSkills, jobSkills []string) (float64, []string, []string) {
	matched := []string{}
	missing := []string{}
	if len(jobSkills) == 0 {
		return 0.0, matched, missing
	}

	normalizedResume := e.table.NormalizeAll(resumeSkills)
	resumeSet := make(map[string]bool, len(normalizedResume))
	for _, s := range normalizedResume {
		resumeSet[s] = true
	}

	// Unique normalized requirements in first-occurrence order, each
	// mapped back to the listing's spelling.
	jobOriginal := make(map[string]string, len(jobSkills))
	ordered := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		n := e.table.Normalize(s)
		if _, seen := jobOriginal[n]; !seen {
			ordered = append(ordered, n)
		}
		jobOriginal[n] = s
	}

	matchCount := 0
	for _, n := range ordered {
		if resumeSet[n] {
			matchCount++
			matched = append(matched, jobOriginal[n])
			continue
		}
		if _, ok := fuzzy.BestMatch(n, normalizedResume, fuzzyCutoff); ok {
			matchCount++
			matched = append(matched, jobOriginal[n])
			continue
		}
		missing = append(missing, jobOriginal[n])
	}

	score := round2(float64(matchCount) / float64(len(jobSkills)) * 100)
	return score, matched, missing
}

// keywordScore is the fraction of job keywords found as substrings of
// the flattened resume text, as a percentage. Either side empty scores
// zero.
func keywordScore(resumeText string, keywords []string) float64 {
	if len(keywords) == 0 || resumeText == "" {
		return 0.0
	}
	matchCount := 0
	for _, kw := range keywords {
		if strings.Contains(resumeText, strings.ToLower(kw)) {
			matchCount++
		}
	}
	return round2(float64(matchCount) / float64(len(keywords)) * 100)
}

// experienceText flattens work history into one lowercased blob.
func experienceText(entries []types.ExperienceEntry) string {
	var parts []string
	for _, e := range entries {
		for _, s := range []string{e.Title, e.Company, e.Dates, e.Details} {
			if s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// educationText flattens education history into one lowercased blob.
func educationText(entries []types.EducationEntry) string {
	var parts []string
	for _, e := range entries {
		for _, s := range []string{e.Degree, e.Institution, e.Dates, e.Details} {
			if s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
