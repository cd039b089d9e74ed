// Package types defines the shared data structures exchanged between
// extraction, matching, and the match service.
package types

// ExperienceEntry is a single work-history item extracted from a resume.
// Any field may be empty; heuristic extraction produces partial entries
// when a date range is found without surrounding title text.
type ExperienceEntry struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Dates   string `json:"dates"`
	Details string `json:"details"`
}

// EducationEntry is a single education item extracted from a resume.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Dates       string `json:"dates"`
	Details     string `json:"details"`
}

// ResumeFields is the raw field set produced by extraction. Skills are
// deduplicated by normalized form; emails and phones are collected as
// sets across the whole document.
type ResumeFields struct {
	Name       string            `json:"name,omitempty"`
	Emails     []string          `json:"emails,omitempty"`
	Phones     []string          `json:"phones,omitempty"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
}

// IsEmpty reports whether extraction produced nothing usable for matching.
func (f ResumeFields) IsEmpty() bool {
	return len(f.Skills) == 0 && len(f.Experience) == 0 && len(f.Education) == 0
}

// ResumeData is the response-facing view of a parsed resume: a single
// primary email and phone plus the hyperlinks recovered from the document.
type ResumeData struct {
	Name       string            `json:"name,omitempty"`
	Email      string            `json:"email,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Links      []string          `json:"links,omitempty"`
}

// NewResumeData builds the response view from merged fields, taking the
// first collected email and phone as primary.
func NewResumeData(fields ResumeFields, links []string) *ResumeData {
	data := &ResumeData{
		Name:       fields.Name,
		Skills:     fields.Skills,
		Experience: fields.Experience,
		Education:  fields.Education,
		Links:      links,
	}
	if len(fields.Emails) > 0 {
		data.Email = fields.Emails[0]
	}
	if len(fields.Phones) > 0 {
		data.Phone = fields.Phones[0]
	}
	return data
}
