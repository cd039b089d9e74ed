package ingestion

import (
	"regexp"
	"strings"
)

var innerSpace = regexp.MustCompile(`\s+`)

// CleanText normalizes converted text while preserving line structure:
// CRLF endings become LF, trailing whitespace is trimmed, runs of
// spaces inside a line collapse to one, and runs of blank lines
// collapse to a single blank line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = cleanLine(line)
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// cleanLine trims a single line and collapses inner whitespace runs.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return innerSpace.ReplaceAllString(trimmed, " ")
}
