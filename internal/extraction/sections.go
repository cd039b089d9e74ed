// Package extraction parses converted resume text into structured
// candidate fields using line-oriented heuristics: section tracking,
// email/phone/date patterns, and vocabulary-driven skill detection.
package extraction

import "strings"

// Section is the state of the line scanner. Exactly one section is
// active at a time; heading markers reset the scanner to SectionNone.
type Section int

// Scanner states.
const (
	SectionNone Section = iota
	SectionSkills
	SectionExperience
	SectionEducation
)

func (s Section) String() string {
	switch s {
	case SectionSkills:
		return "skills"
	case SectionExperience:
		return "experience"
	case SectionEducation:
		return "education"
	default:
		return "none"
	}
}

// sectionHeaders lists the header phrases that open each section.
// Matching is by case-insensitive substring containment.
var sectionHeaders = []struct {
	section Section
	phrases []string
}{
	{SectionSkills, []string{"skills", "skill set", "technical skills", "core skills"}},
	{SectionExperience, []string{"experience", "professional experience", "work history", "experiences"}},
	{SectionEducation, []string{"education", "educations", "education & certifications", "academic background"}},
}

// nextState is the scanner transition function. It returns the section
// active after seeing line, plus whether the line itself is a header
// (a section-opening phrase or a markdown heading marker) and therefore
// not content. When a line contains phrases of several sections, the
// last match wins. A heading marker always resets to SectionNone:
// headings delimit sections but are never section content.
func nextState(current Section, line string) (next Section, isHeader bool) {
	next = current
	lowered := strings.ToLower(strings.TrimSpace(line))
	for _, group := range sectionHeaders {
		for _, phrase := range group.phrases {
			if strings.Contains(lowered, phrase) {
				next = group.section
				isHeader = true
			}
		}
	}
	if strings.HasPrefix(lowered, "#") {
		return SectionNone, true
	}
	return next, isHeader
}
