// Package matcher orchestrates the match operation: convert an
// uploaded resume, extract fields, score and rank listings, and
// optionally enrich the result with LLM reasoning.
package matcher

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/applyai/resume2job/internal/extraction"
	"github.com/applyai/resume2job/internal/ingestion"
	"github.com/applyai/resume2job/internal/jobs"
	"github.com/applyai/resume2job/internal/llm"
	"github.com/applyai/resume2job/internal/matching"
	"github.com/applyai/resume2job/internal/skills"
	"github.com/applyai/resume2job/internal/types"
)

// User-facing error messages returned in MatchResponse.Error.
const (
	errNoInput          = "No resume file or manual data provided"
	errConversionFailed = "Failed to extract text from the resume. Please try again or enter your information manually."
	errNotEnoughData    = "We could not extract enough information from your resume. Please enter your skills and work experience manually."
)

// Request carries one match invocation. Jobs, when set, bypasses the
// configured source. Manual skills and experience bypass resume
// parsing entirely.
type Request struct {
	Resume           []byte
	Filename         string
	Jobs             []types.JobListing
	UseLLM           bool
	ManualSkills     string
	ManualExperience string
}

// Service wires conversion, extraction, matching, and reasoning.
type Service struct {
	extractor *extraction.Extractor
	engine    *matching.Engine
	client    llm.Client
	reasoner  *matching.Reasoner
	source    jobs.Source
	logger    *log.Logger
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithLLM enables LLM-assisted extraction and reasoning.
func WithLLM(client llm.Client) Option {
	return func(s *Service) {
		s.client = client
		s.reasoner = matching.NewReasoner(client)
	}
}

// WithSource sets the listings source used when a request carries none.
func WithSource(source jobs.Source) Option {
	return func(s *Service) { s.source = source }
}

// WithLogger overrides the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService builds a Service around a skill table. A nil table selects
// the built-in one.
func NewService(table *skills.Table, opts ...Option) *Service {
	s := &Service{
		extractor: extraction.NewExtractor(table),
		engine:    matching.NewEngine(table),
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Match runs the full pipeline. Failures surface in the response's
// Error field rather than as a Go error, so callers always get a
// serializable result.
func (s *Service) Match(ctx context.Context, req Request) *types.MatchResponse {
	requestID := uuid.New().String()
	s.logger.Printf("[%s] match request: file=%q manual=%v use_llm=%v",
		requestID, req.Filename, req.ManualSkills != "" || req.ManualExperience != "", req.UseLLM)

	if req.ManualSkills != "" || req.ManualExperience != "" {
		return s.matchManual(ctx, requestID, req)
	}
	if len(req.Resume) == 0 {
		return &types.MatchResponse{Matches: []types.ScoredJob{}, Fallback: true, Error: errNoInput}
	}

	doc, err := s.convert(ctx, req)
	if err != nil {
		s.logger.Printf("[%s] conversion failed: %v", requestID, err)
		return &types.MatchResponse{Matches: []types.ScoredJob{}, Fallback: true, Error: errConversionFailed}
	}

	fields := s.extractor.Extract(doc.Markdown)
	if fields.IsEmpty() {
		// Retry against the plain-text rendering with the coarse
		// block patterns before giving up.
		coarse := s.extractor.ExtractPlainText(doc.PlainText)
		fields.Skills = coarse.Skills
		fields.Experience = coarse.Experience
		fields.Education = coarse.Education
	}
	if fields.IsEmpty() {
		return &types.MatchResponse{Matches: []types.ScoredJob{}, Fallback: true, Error: errNotEnoughData}
	}

	links := doc.Links
	if s.client != nil && (req.UseLLM || len(fields.Skills) == 0) {
		s.logger.Printf("[%s] running LLM field extraction", requestID)
		llmFields, llmLinks, err := llm.ExtractResume(ctx, s.client, doc.Markdown, links)
		if err != nil {
			s.logger.Printf("[%s] LLM extraction failed, keeping heuristic fields: %v", requestID, err)
		} else {
			fields = extraction.Merge(fields, llmFields)
			links = mergeLinks(links, llmLinks)
		}
	}

	listings, err := s.listings(ctx, req)
	if err != nil {
		s.logger.Printf("[%s] failed to load listings: %v", requestID, err)
		return &types.MatchResponse{Matches: []types.ScoredJob{}, Fallback: true, Error: "Error processing resume: " + err.Error()}
	}
	s.logger.Printf("[%s] found %d jobs", requestID, len(listings))

	ranked := s.engine.Rank(fields, listings)
	if req.UseLLM && s.reasoner != nil && len(ranked) > 0 {
		s.logger.Printf("[%s] running LLM reasoning over %d matches", requestID, len(ranked))
		s.reasoner.EnrichAll(ctx, fields, ranked)
	}

	return &types.MatchResponse{
		Matches:    ranked,
		ResumeData: types.NewResumeData(fields, links),
		Fallback:   !req.UseLLM,
	}
}

// matchManual ranks listings against manually supplied skills and
// experience, skipping resume parsing.
func (s *Service) matchManual(ctx context.Context, requestID string, req Request) *types.MatchResponse {
	fields := types.ResumeFields{
		Skills:     splitManualSkills(req.ManualSkills),
		Experience: parseManualExperience(req.ManualExperience),
	}

	listings, err := s.listings(ctx, req)
	if err != nil {
		s.logger.Printf("[%s] failed to load listings: %v", requestID, err)
		return &types.MatchResponse{Matches: []types.ScoredJob{}, Fallback: true, Error: "Error processing manual input: " + err.Error()}
	}

	ranked := s.engine.Rank(fields, listings)
	return &types.MatchResponse{
		Matches:    ranked,
		ResumeData: types.NewResumeData(fields, nil),
		Fallback:   true,
	}
}

// convert picks a converter by filename and falls back to raw text when
// a structured converter cannot parse the upload.
func (s *Service) convert(ctx context.Context, req Request) (*ingestion.Document, error) {
	converter := ingestion.ForFilename(req.Filename)
	doc, err := converter.Convert(ctx, req.Resume, req.Filename)
	if err == nil {
		return doc, nil
	}
	if _, isText := converter.(ingestion.TextConverter); isText {
		return nil, err
	}
	return ingestion.TextConverter{}.Convert(ctx, req.Resume, req.Filename)
}

func (s *Service) listings(ctx context.Context, req Request) ([]types.JobListing, error) {
	if req.Jobs != nil {
		return req.Jobs, nil
	}
	if s.source == nil {
		return nil, nil
	}
	return s.source.Listings(ctx)
}

// splitManualSkills splits a comma-separated skill string, dropping
// blanks.
func splitManualSkills(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parseManualExperience accepts a JSON array of entries, a single JSON
// entry object, or plain text describing one role.
func parseManualExperience(raw string) []types.ExperienceEntry {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var entries []types.ExperienceEntry
	if err := json.Unmarshal([]byte(raw), &entries); err == nil {
		return entries
	}
	var entry types.ExperienceEntry
	if err := json.Unmarshal([]byte(raw), &entry); err == nil {
		return []types.ExperienceEntry{entry}
	}
	return []types.ExperienceEntry{{Title: raw}}
}

func mergeLinks(links, extra []string) []string {
	seen := make(map[string]bool, len(links))
	merged := make([]string, 0, len(links)+len(extra))
	for _, l := range links {
		if !seen[l] {
			seen[l] = true
			merged = append(merged, l)
		}
	}
	for _, l := range extra {
		if !seen[l] {
			seen[l] = true
			merged = append(merged, l)
		}
	}
	return merged
}
