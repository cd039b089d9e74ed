package extraction

import (
	"regexp"
	"strings"

	"github.com/applyai/resume2job/internal/types"
)

// Coarse block patterns for plain text without markdown structure: a
// section cue line followed by everything up to the next blank line.
var (
	experienceBlocks = []*regexp.Regexp{
		regexp.MustCompile(`(?is)(?:work|experience|employment)[\s\w]*?\n(.*?)(?:\n\n|\z)`),
		regexp.MustCompile(`(?is)(?:job|position|role).*?\n(.*?)(?:\n\n|\z)`),
	}
	educationBlocks = []*regexp.Regexp{
		regexp.MustCompile(`(?is)(?:education|academic)[\s\w]*?\n(.*?)(?:\n\n|\z)`),
		regexp.MustCompile(`(?is)(?:degree|diploma|certificate).*?\n(.*?)(?:\n\n|\z)`),
	}
)

// ExtractPlainText recovers fields from unstructured text, used when
// document conversion fell back to raw text with no markdown headings.
// Skills come from a vocabulary scan plus 1-3 word n-gram lookups;
// experience and education are captured as coarse blocks.
func (e *Extractor) ExtractPlainText(text string) types.ResumeFields {
	if strings.TrimSpace(text) == "" {
		return types.ResumeFields{}
	}

	fields := types.ResumeFields{
		Skills: e.ScanSkills(text),
	}

	for _, pattern := range experienceBlocks {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if details := strings.TrimSpace(match[1]); details != "" {
				fields.Experience = append(fields.Experience, types.ExperienceEntry{
					Title:   "Work Experience",
					Details: details,
				})
			}
		}
	}
	for _, pattern := range educationBlocks {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if details := strings.TrimSpace(match[1]); details != "" {
				fields.Education = append(fields.Education, types.EducationEntry{
					Degree:  "Education",
					Details: details,
				})
			}
		}
	}

	return fields
}

// ScanSkills returns every vocabulary skill present in the text,
// matching known phrases with word boundaries and additionally probing
// 1-3 word n-grams against the vocabulary.
func (e *Extractor) ScanSkills(text string) []string {
	lowered := strings.ToLower(text)
	set := newSkillSet(e.table)

	for _, known := range e.table.Vocabulary() {
		if containsPhrase(lowered, known) {
			set.add(known)
		}
	}

	words := strings.Fields(lowered)
	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(words); i++ {
			phrase := strings.Join(words[i:i+n], " ")
			if e.table.IsKnown(phrase) {
				set.add(phrase)
			}
		}
	}

	return set.values()
}
