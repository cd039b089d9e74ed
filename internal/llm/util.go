// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import (
	"encoding/json"
	"strings"
)

// CleanJSONBlock recovers a JSON payload from a raw model response.
// LLMs often wrap JSON in ```json ... ``` fences or surround it with
// conversational text even when instructed not to, so after stripping
// fences the first balanced JSON object or array is extracted.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")
	start := objStart
	if start < 0 || (arrStart >= 0 && arrStart < start) {
		start = arrStart
	}
	if start < 0 {
		return text
	}

	var extracted string
	if text[start] == '{' {
		extracted = ExtractJSONObject(text[start:])
	} else {
		extracted = ExtractJSONArray(text[start:])
	}
	if extracted == "" {
		return text
	}
	return extracted
}

// ExtractJSONObject returns the first balanced JSON object at the start
// of text, or "" if text does not begin with one. Braces inside string
// literals do not affect the balance.
func ExtractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// ExtractJSONArray returns the first balanced JSON array at the start
// of text, or "" if text does not begin with one.
func ExtractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, open, close byte) string {
	if len(text) == 0 || text[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}

// DecodeLenient unmarshals a model response into v. Strict JSON is
// tried first; on failure the text is reinterpreted as a Python-style
// literal (single-quoted strings, True/False/None) and retried. Models
// prompted with Python dict examples sometimes answer in that form.
func DecodeLenient(text string, v any) error {
	text = strings.TrimSpace(text)
	if err := json.Unmarshal([]byte(text), v); err == nil {
		return nil
	}

	coerced := pythonLiteralToJSON(text)
	if err := json.Unmarshal([]byte(coerced), v); err != nil {
		return &ParseError{Message: "response is neither JSON nor a Python literal", Cause: err}
	}
	return nil
}

// pythonLiteralToJSON rewrites single-quoted strings to double-quoted
// ones and maps True/False/None to their JSON spellings. Operates on a
// best-effort character scan; it does not handle every repr edge case.
func pythonLiteralToJSON(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	const (
		stateNone = iota
		stateSingle
		stateDouble
	)
	state := stateNone
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch state {
		case stateSingle:
			switch {
			case c == '\\' && i+1 < len(text):
				// \' is not a legal JSON escape; unwrap it.
				if text[i+1] == '\'' {
					sb.WriteByte('\'')
				} else {
					sb.WriteByte(c)
					sb.WriteByte(text[i+1])
				}
				i++
			case c == '\'':
				state = stateNone
				sb.WriteByte('"')
			case c == '"':
				sb.WriteString(`\"`)
			default:
				sb.WriteByte(c)
			}
		case stateDouble:
			switch {
			case escaped:
				escaped = false
				sb.WriteByte(c)
			case c == '\\':
				escaped = true
				sb.WriteByte(c)
			case c == '"':
				state = stateNone
				sb.WriteByte(c)
			default:
				sb.WriteByte(c)
			}
		default:
			switch {
			case c == '\'':
				state = stateSingle
				sb.WriteByte('"')
			case c == '"':
				state = stateDouble
				sb.WriteByte(c)
			case hasWordAt(text, i, "True"):
				sb.WriteString("true")
				i += len("True") - 1
			case hasWordAt(text, i, "False"):
				sb.WriteString("false")
				i += len("False") - 1
			case hasWordAt(text, i, "None"):
				sb.WriteString("null")
				i += len("None") - 1
			default:
				sb.WriteByte(c)
			}
		}
	}

	return sb.String()
}

// hasWordAt reports whether word occurs at offset i with no adjoining
// identifier characters.
func hasWordAt(text string, i int, word string) bool {
	if !strings.HasPrefix(text[i:], word) {
		return false
	}
	if i > 0 && isIdentChar(text[i-1]) {
		return false
	}
	end := i + len(word)
	if end < len(text) && isIdentChar(text[end]) {
		return false
	}
	return true
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
