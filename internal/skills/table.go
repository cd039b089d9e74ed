// Package skills provides the canonical skill vocabulary and alias
// table shared by resume extraction and job scoring. A Table is built
// once at startup and is immutable afterwards, so it is safe for
// unsynchronized concurrent reads.
package skills

import "strings"

// Table maps raw skill tokens to canonical skill names and carries the
// known-skill vocabulary used for substring and fuzzy lookups.
type Table struct {
	aliases    map[string]string
	vocabulary []string
	known      map[string]bool
}

// NewTable builds an immutable Table from an alias map and a vocabulary
// list. Inputs are copied; callers may reuse their slices and maps.
func NewTable(aliases map[string]string, vocabulary []string) *Table {
	t := &Table{
		aliases:    make(map[string]string, len(aliases)),
		vocabulary: make([]string, 0, len(vocabulary)),
		known:      make(map[string]bool, len(vocabulary)),
	}
	for raw, canonical := range aliases {
		t.aliases[strings.ToLower(strings.TrimSpace(raw))] = canonical
	}
	for _, skill := range vocabulary {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || t.known[skill] {
			continue
		}
		t.known[skill] = true
		t.vocabulary = append(t.vocabulary, skill)
	}
	return t
}

// Normalize canonicalizes a raw skill token. The token is lowercased
// and trimmed; if the alias table maps it, the canonical form is
// returned, otherwise the lowercased token passes through unchanged so
// unknown skills keep their own identity. Pure and total.
func (t *Table) Normalize(token string) string {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if canonical, ok := t.aliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeAll normalizes every token in order, preserving duplicates.
func (t *Table) NormalizeAll(tokens []string) []string {
	normalized := make([]string, len(tokens))
	for i, token := range tokens {
		normalized[i] = t.Normalize(token)
	}
	return normalized
}

// Vocabulary returns the known-skill list in registration order. The
// returned slice must not be modified.
func (t *Table) Vocabulary() []string {
	return t.vocabulary
}

// IsKnown reports whether the lowercased token is in the vocabulary.
func (t *Table) IsKnown(token string) bool {
	return t.known[strings.ToLower(strings.TrimSpace(token))]
}
