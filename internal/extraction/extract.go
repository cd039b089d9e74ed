package extraction

import (
	"regexp"
	"strings"

	"github.com/applyai/resume2job/internal/fuzzy"
	"github.com/applyai/resume2job/internal/skills"
	"github.com/applyai/resume2job/internal/types"
)

// Line-level patterns. The phone pattern accepts digit runs of length
// >= 8 with space/dash/paren separators and an optional leading plus;
// the date pattern accepts YYYY-YYYY and YYYY-present ranges with a
// hyphen or en-dash.
var (
	emailPattern = regexp.MustCompile(`[\w.\-]+@[\w.\-]+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}\d`)
	datePattern  = regexp.MustCompile(`(?i)\d{4}\s*[-–]\s*(?:\d{4}|present)`)
	skillDelims  = regexp.MustCompile(`[;,/|&\-]`)
)

// fuzzyCutoff is the acceptance threshold for close-match skill lookups.
const fuzzyCutoff = 0.8

// Extractor parses resume text into ResumeFields using a shared skill
// table. An Extractor is stateless and safe for concurrent use.
type Extractor struct {
	table *skills.Table
}

// NewExtractor returns an Extractor backed by the given skill table.
// A nil table selects the built-in one.
func NewExtractor(table *skills.Table) *Extractor {
	if table == nil {
		table = skills.DefaultTable()
	}
	return &Extractor{table: table}
}

// Extract parses the converted document text. An empty document yields
// empty fields, never an error.
func (e *Extractor) Extract(text string) types.ResumeFields {
	lines := strings.Split(text, "\n")

	fields := types.ResumeFields{
		Emails: collectMatches(lines, emailPattern),
		Phones: collectMatches(lines, phonePattern),
		Name:   findName(lines),
	}

	skillSet := newSkillSet(e.table)
	section := SectionNone
	for idx, line := range lines {
		var isHeader bool
		section, isHeader = nextState(section, line)

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isHeader {
			continue
		}

		switch section {
		case SectionSkills:
			e.extractSkillLine(trimmed, skillSet)
		case SectionExperience:
			fields.Experience = append(fields.Experience, experienceEntry(lines, idx, trimmed))
		case SectionEducation:
			fields.Education = append(fields.Education, educationEntry(lines, idx, trimmed))
		}
	}

	// Whole-document vocabulary scan: serves both the no-skills
	// fallback and the supplemental union pass, since the supplemental
	// scan is a superset of the fallback scan.
	docText := strings.ToLower(strings.Join(lines, " "))
	for _, known := range e.table.Vocabulary() {
		if containsPhrase(docText, known) {
			skillSet.add(known)
		}
	}

	fields.Skills = skillSet.values()
	return fields
}

// extractSkillLine splits a skills-section line into tokens and resolves
// each against the vocabulary: substring hits first, then a fuzzy
// close-match, and finally the raw lowercased token so unknown but
// explicitly listed terms are kept.
func (e *Extractor) extractSkillLine(line string, set *skillSet) {
	for _, token := range skillDelims.Split(line, -1) {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}

		found := false
		for _, known := range e.table.Vocabulary() {
			if containsPhrase(token, known) {
				set.add(known)
				found = true
			}
		}
		if found {
			continue
		}

		if match, ok := fuzzy.BestMatch(token, e.table.Vocabulary(), fuzzyCutoff); ok {
			set.add(match)
			continue
		}
		set.add(token)
	}
}

// experienceEntry builds a work-history entry for a line inside the
// experience section. Lines carrying a year range become a structured
// entry with the previous line as title and the next line as details;
// other lines become a minimal title-only entry.
func experienceEntry(lines []string, idx int, trimmed string) types.ExperienceEntry {
	dates := datePattern.FindString(trimmed)
	if dates == "" {
		return types.ExperienceEntry{Title: trimmed}
	}
	return types.ExperienceEntry{
		Title:   neighborLine(lines, idx-1),
		Dates:   dates,
		Details: neighborLine(lines, idx+1),
	}
}

// educationEntry mirrors experienceEntry with degree/institution naming.
func educationEntry(lines []string, idx int, trimmed string) types.EducationEntry {
	dates := datePattern.FindString(trimmed)
	if dates == "" {
		return types.EducationEntry{Degree: trimmed}
	}
	return types.EducationEntry{
		Degree:  neighborLine(lines, idx-1),
		Dates:   dates,
		Details: neighborLine(lines, idx+1),
	}
}

// neighborLine returns the trimmed line at idx unless it is out of
// range or a heading marker.
func neighborLine(lines []string, idx int) string {
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	trimmed := strings.TrimSpace(lines[idx])
	if strings.HasPrefix(trimmed, "#") {
		return ""
	}
	return trimmed
}

// findName returns the first non-empty line that is not a heading and
// matches neither the email nor the phone pattern.
func findName(lines []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if emailPattern.MatchString(line) || phonePattern.MatchString(line) {
			continue
		}
		return trimmed
	}
	return ""
}

// collectMatches gathers all pattern matches across lines into an
// ordered, deduplicated list.
func collectMatches(lines []string, pattern *regexp.Regexp) []string {
	var out []string
	seen := make(map[string]bool)
	for _, line := range lines {
		for _, match := range pattern.FindAllString(line, -1) {
			if !seen[match] {
				seen[match] = true
				out = append(out, match)
			}
		}
	}
	return out
}

// containsPhrase reports whether phrase occurs in text bounded by
// non-alphanumeric characters, so short vocabulary entries like "c" or
// "r" cannot match inside longer words.
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; start <= len(text)-len(phrase); {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		beforeOK := i == 0 || !isWordChar(text[i-1])
		afterOK := end >= len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
	return false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// skillSet is an insertion-ordered set deduplicated by normalized form.
type skillSet struct {
	table *skills.Table
	seen  map[string]bool
	items []string
}

func newSkillSet(table *skills.Table) *skillSet {
	return &skillSet{table: table, seen: make(map[string]bool)}
}

func (s *skillSet) add(skill string) {
	key := s.table.Normalize(skill)
	if key == "" || s.seen[key] {
		return
	}
	s.seen[key] = true
	s.items = append(s.items, skill)
}

func (s *skillSet) values() []string {
	return s.items
}
