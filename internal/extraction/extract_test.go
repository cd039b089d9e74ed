package extraction

import (
	"testing"

	"github.com/applyai/resume2job/internal/skills"
	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Smith
john@example.com
+1 (555) 123-4567

Skills
Python, SQL databases, PowerBI

Experience
Software Engineer
2019-2022
Built data pipelines`

func newTestExtractor() *Extractor {
	return NewExtractor(skills.DefaultTable())
}

func TestExtract_EmptyDocument(t *testing.T) {
	fields := newTestExtractor().Extract("")

	assert.Empty(t, fields.Name)
	assert.Empty(t, fields.Emails)
	assert.Empty(t, fields.Phones)
	assert.Empty(t, fields.Skills)
	assert.Empty(t, fields.Experience)
	assert.Empty(t, fields.Education)
}

func TestExtract_Name(t *testing.T) {
	fields := newTestExtractor().Extract(sampleResume)

	assert.Equal(t, "John Smith", fields.Name)
}

func TestExtract_EmailsAndPhones(t *testing.T) {
	fields := newTestExtractor().Extract(sampleResume)

	assert.Equal(t, []string{"john@example.com"}, fields.Emails)
	assert.Equal(t, []string{"+1 (555) 123-4567"}, fields.Phones)
}

func TestExtract_SkillsSectionStripsQualifiers(t *testing.T) {
	fields := newTestExtractor().Extract("Skills\nPython, SQL databases, PowerBI")

	assert.ElementsMatch(t, []string{"python", "sql", "powerbi"}, fields.Skills)
}

func TestExtract_SkillsFuzzyMatch(t *testing.T) {
	fields := newTestExtractor().Extract("Skills\nKubernets; Jenkins")

	assert.Contains(t, fields.Skills, "kubernetes")
	assert.Contains(t, fields.Skills, "jenkins")
}

func TestExtract_UnknownSkillKeptAsRawToken(t *testing.T) {
	fields := newTestExtractor().Extract("Skills\nUnderwater Welding")

	assert.Contains(t, fields.Skills, "underwater welding")
}

func TestExtract_SkillsDeduplicatedByNormalizedForm(t *testing.T) {
	fields := newTestExtractor().Extract("Skills\nReact, ReactJS")

	count := 0
	table := skills.DefaultTable()
	for _, s := range fields.Skills {
		if table.Normalize(s) == "react" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtract_ExperienceDateRange(t *testing.T) {
	fields := newTestExtractor().Extract(sampleResume)

	var withDates []string
	for _, entry := range fields.Experience {
		if entry.Dates != "" {
			withDates = append(withDates, entry.Dates)
			assert.Equal(t, "Software Engineer", entry.Title)
			assert.Equal(t, "Built data pipelines", entry.Details)
		}
	}
	assert.Equal(t, []string{"2019-2022"}, withDates)
}

func TestExtract_ExperiencePresentRange(t *testing.T) {
	fields := newTestExtractor().Extract("Experience\nData Analyst\n2021 - present\nDashboards")

	var dates []string
	for _, entry := range fields.Experience {
		if entry.Dates != "" {
			dates = append(dates, entry.Dates)
		}
	}
	assert.Equal(t, []string{"2021 - present"}, dates)
}

func TestExtract_ExperienceLineWithoutDateIsMinimalEntry(t *testing.T) {
	fields := newTestExtractor().Extract("Experience\nFreelance consulting work")

	assert.Equal(t, "Freelance consulting work", fields.Experience[0].Title)
	assert.Empty(t, fields.Experience[0].Dates)
	assert.Empty(t, fields.Experience[0].Company)
}

func TestExtract_EducationSection(t *testing.T) {
	fields := newTestExtractor().Extract("Education\nBSc Mathematics\n2011-2015\nFirst class honours")

	var withDates int
	for _, entry := range fields.Education {
		if entry.Dates == "2011-2015" {
			withDates++
			assert.Equal(t, "BSc Mathematics", entry.Degree)
			assert.Equal(t, "First class honours", entry.Details)
		}
	}
	assert.Equal(t, 1, withDates)
}

func TestExtract_HeadingResetsSection(t *testing.T) {
	fields := newTestExtractor().Extract("Skills\nPython\n# Projects\nBuilt a compiler in OCaml")

	// After the heading the scanner leaves the skills section, so the
	// project line is not tokenized into skills.
	for _, s := range fields.Skills {
		assert.NotContains(t, s, "compiler")
	}
}

func TestExtract_LastHeaderMatchWinsOnOneLine(t *testing.T) {
	fields := newTestExtractor().Extract("Skills and Experience\nTeam Lead\n2018-2020\nShipped releases")

	var dates []string
	for _, entry := range fields.Experience {
		if entry.Dates != "" {
			dates = append(dates, entry.Dates)
		}
	}
	assert.Equal(t, []string{"2018-2020"}, dates)
	assert.Empty(t, fields.Skills)
}

func TestExtract_FallbackScanWithoutSkillsSection(t *testing.T) {
	fields := newTestExtractor().Extract("Jane Doe\nBuilt services in Python and Docker on AWS")

	assert.ElementsMatch(t, []string{"python", "docker", "aws"}, fields.Skills)
}

func TestExtract_SupplementalScanAddsSkillsOutsideSections(t *testing.T) {
	fields := newTestExtractor().Extract("Jane Doe\nWorked with GraphQL daily\n\nSkills\nPython")

	assert.Contains(t, fields.Skills, "python")
	assert.Contains(t, fields.Skills, "graphql")
}

func TestExtract_ShortVocabularyEntriesNeedWordBoundaries(t *testing.T) {
	// "r" and "c" must not match inside "PowerBI" or "docker".
	fields := newTestExtractor().Extract("Skills\nPowerBI, Docker")

	assert.NotContains(t, fields.Skills, "r")
	assert.NotContains(t, fields.Skills, "c")
}
