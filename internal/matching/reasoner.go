package matching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/applyai/resume2job/internal/llm"
	"github.com/applyai/resume2job/internal/prompts"
	"github.com/applyai/resume2job/internal/types"
)

const (
	reasonTimeout     = 30 * time.Second
	reasonConcurrency = 4
)

const fallbackReasonFormat = "Based on your resume and the job description for %s at %s, " +
	"we couldn't extract detailed skills or experience matches, but you may still be a good fit! " +
	"We encourage you to review the job requirements and consider applying if you feel qualified. " +
	"If you want a more tailored match, try updating your resume with more details."

// Reasoner re-scores ranked matches with an LLM and attaches a written
// explanation. Heuristic scores and matched/missing skills are kept;
// only the compatibility score and the reason fields are replaced.
type Reasoner struct {
	client      llm.Client
	timeout     time.Duration
	concurrency int
}

// NewReasoner wraps an LLM client with the default per-job timeout and
// concurrency limit.
func NewReasoner(client llm.Client) *Reasoner {
	return &Reasoner{
		client:      client,
		timeout:     reasonTimeout,
		concurrency: reasonConcurrency,
	}
}

// reasonPayload is the JSON shape the reasoning prompt asks for. The
// model's exp/edu sub-scores are advisory and not applied.
type reasonPayload struct {
	Compatibility *float64 `json:"compatibility"`
	ExpScore      float64  `json:"exp_score"`
	EduScore      float64  `json:"edu_score"`
	Reason        string   `json:"reason"`
}

// EnrichAll runs EnrichJob over every match with bounded concurrency.
// Failures degrade to fallback values per job; the batch never fails.
func (r *Reasoner) EnrichAll(ctx context.Context, fields types.ResumeFields, matches []types.ScoredJob) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := range matches {
		i := i
		g.Go(func() error {
			r.EnrichJob(ctx, fields, &matches[i])
			return nil
		})
	}
	_ = g.Wait()
}

// EnrichJob asks the model to score and explain one match. On any
// failure the compatibility drops to zero and a templated reason naming
// the job is attached, so a broken model call never hides a listing.
func (r *Reasoner) EnrichJob(ctx context.Context, fields types.ResumeFields, job *types.ScoredJob) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	fallback := fmt.Sprintf(fallbackReasonFormat, job.Title, job.Company)

	raw, err := r.client.GenerateContent(ctx, r.buildPrompt(fields, job), llm.TierAdvanced)
	if err != nil {
		job.Compatibility = 0
		job.Reason = fallback
		job.LLMReason = fallback
		return
	}

	var payload reasonPayload
	if err := llm.DecodeLenient(llm.CleanJSONBlock(raw), &payload); err != nil {
		job.Compatibility = 0
		job.Reason = fallback
		job.LLMReason = fallback
		return
	}

	if payload.Compatibility != nil {
		job.Compatibility = *payload.Compatibility
	}
	reason := strings.TrimSpace(payload.Reason)
	if reason == "" {
		reason = fallback
	}
	job.Reason = reason
	job.LLMReason = reason
}

func (r *Reasoner) buildPrompt(fields types.ResumeFields, job *types.ScoredJob) string {
	template := prompts.MustGet("matching.json", "job_reasoning")
	return prompts.Format(template, map[string]string{
		"Name":           fields.Name,
		"Emails":         strings.Join(fields.Emails, ", "),
		"Phones":         strings.Join(fields.Phones, ", "),
		"Skills":         strings.Join(fields.Skills, ", "),
		"Experience":     experienceText(fields.Experience),
		"Education":      educationText(fields.Education),
		"Title":          job.Title,
		"Company":        job.Company,
		"Description":    job.Description,
		"SkillsRequired": strings.Join(job.SkillsRequired, ", "),
		"Location":       job.Location,
		"EmploymentType": job.EmploymentType,
	})
}
