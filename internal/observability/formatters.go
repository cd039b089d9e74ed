// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/applyai/resume2job/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeFields outputs a human-readable summary of extracted resume fields.
func (p *Printer) PrintResumeFields(fields types.ResumeFields) {
	var sb strings.Builder

	if fields.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:   %s\n", fields.Name))
	}
	if len(fields.Emails) > 0 {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", fields.Emails[0]))
	}
	if len(fields.Phones) > 0 {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", fields.Phones[0]))
	}

	if len(fields.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(fields.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", fields.Skills[i]))
		}
		if len(fields.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(fields.Skills)-maxItemsToShow))
		}
	}

	if len(fields.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(fields.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := fields.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", entry.Title))
			if entry.Dates != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", entry.Dates))
			}
			sb.WriteString("\n")
		}
	}

	if len(fields.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(fields.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", fields.Education[i].Degree))
		}
	}

	p.printBox("Extracted Resume Fields", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatches outputs a ranked match summary, best first.
func (p *Printer) PrintMatches(matches []types.ScoredJob) {
	var sb strings.Builder

	if len(matches) == 0 {
		sb.WriteString("No matches.")
	}

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("%d. %s at %s\n", i+1, m.Title, m.Company))
		sb.WriteString(fmt.Sprintf("   compatibility %.2f (skills %.2f / exp %.2f / edu %.2f)\n",
			m.Compatibility, m.SkillScore, m.ExpScore, m.EduScore))
		if len(m.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   matched: %s\n", strings.Join(m.MatchedSkills, ", ")))
		}
		if len(m.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   missing: %s\n", strings.Join(m.MissingSkills, ", ")))
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox("Job Matches", strings.TrimRight(sb.String(), "\n"))
}
