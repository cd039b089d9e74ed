// Package llm - extract.go provides LLM-based resume field extraction.
package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/applyai/resume2job/internal/prompts"
	"github.com/applyai/resume2job/internal/schemas"
	"github.com/applyai/resume2job/internal/types"
)

// fieldMapping maps the field names models actually emit to canonical
// lowercase keys, in precedence order. Scalar email/phone values are
// folded into the plural list fields during canonicalization.
var fieldMapping = []struct {
	variant   string
	canonical string
}{
	{"Name", "name"},
	{"name", "name"},
	{"Emails", "emails"},
	{"emails", "emails"},
	{"Email", "emails"},
	{"email", "emails"},
	{"Phones", "phones"},
	{"phones", "phones"},
	{"Phone", "phones"},
	{"phone", "phones"},
	{"Skills", "skills"},
	{"skills", "skills"},
	{"Work Experience", "experience"},
	{"Experience", "experience"},
	{"experience", "experience"},
	{"Education", "education"},
	{"education", "education"},
	{"Important URLs", "links"},
	{"links", "links"},
}

// ExtractResume asks the model for structured resume fields. The
// response is canonicalized, validated against the resume fields
// schema, and converted into typed fields plus any URLs the model
// recovered. Callers treat any error as a signal to continue with
// heuristic extraction alone.
func ExtractResume(ctx context.Context, client Client, markdown string, links []string) (*types.ResumeFields, []string, error) {
	template := prompts.MustGet("extraction.json", "resume_fields")
	prompt := prompts.Format(template, map[string]string{
		"Resume": markdown,
		"Links":  strings.Join(links, "\n"),
	})

	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, nil, err
	}

	var doc map[string]any
	if err := DecodeLenient(CleanJSONBlock(raw), &doc); err != nil {
		return nil, nil, err
	}

	canonical := canonicalizeFields(doc)
	payload, err := json.Marshal(canonical)
	if err != nil {
		return nil, nil, &ParseError{Message: "failed to re-encode extracted fields", Cause: err}
	}
	if err := schemas.ValidateExtraction(string(payload)); err != nil {
		return nil, nil, &ParseError{Message: "extracted fields failed schema validation", Cause: err}
	}

	fields := &types.ResumeFields{
		Name:       asString(canonical["name"]),
		Emails:     asStringSlice(canonical["emails"]),
		Phones:     asStringSlice(canonical["phones"]),
		Skills:     asStringSlice(canonical["skills"]),
		Experience: asExperienceEntries(canonical["experience"]),
		Education:  asEducationEntries(canonical["education"]),
	}
	return fields, asStringSlice(canonical["links"]), nil
}

// canonicalizeFields renames model field variants to canonical keys,
// skipping empty values and lifting scalars into the list fields. The
// first variant in precedence order wins (Emails over Email).
func canonicalizeFields(doc map[string]any) map[string]any {
	canonical := make(map[string]any, len(doc))
	for _, m := range fieldMapping {
		value, ok := doc[m.variant]
		if !ok || isEmptyValue(value) {
			continue
		}
		if _, exists := canonical[m.canonical]; exists {
			continue
		}
		if m.canonical != "name" {
			if s, ok := value.(string); ok {
				value = []any{s}
			}
		}
		canonical[m.canonical] = value
	}
	return canonical
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

func asString(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

func asStringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// asExperienceEntries accepts entries as objects or bare strings.
func asExperienceEntries(value any) []types.ExperienceEntry {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]types.ExperienceEntry, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				out = append(out, types.ExperienceEntry{Title: strings.TrimSpace(v)})
			}
		case map[string]any:
			entry := types.ExperienceEntry{
				Title:   entryField(v, "title", "position", "role"),
				Company: entryField(v, "company", "employer", "organization"),
				Dates:   entryField(v, "dates", "duration", "period"),
				Details: entryField(v, "details", "description"),
			}
			if entry != (types.ExperienceEntry{}) {
				out = append(out, entry)
			}
		}
	}
	return out
}

// asEducationEntries accepts entries as objects or bare strings.
func asEducationEntries(value any) []types.EducationEntry {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]types.EducationEntry, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				out = append(out, types.EducationEntry{Degree: strings.TrimSpace(v)})
			}
		case map[string]any:
			entry := types.EducationEntry{
				Degree:      entryField(v, "degree", "title", "qualification"),
				Institution: entryField(v, "institution", "school", "university"),
				Dates:       entryField(v, "dates", "duration", "period"),
				Details:     entryField(v, "details", "description"),
			}
			if entry != (types.EducationEntry{}) {
				out = append(out, entry)
			}
		}
	}
	return out
}

// entryField returns the first non-empty string among the named keys,
// matched case-insensitively.
func entryField(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		for k, v := range entry {
			if !strings.EqualFold(k, key) {
				continue
			}
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
