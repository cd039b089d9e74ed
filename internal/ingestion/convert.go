// Package ingestion turns uploaded resume documents into text the
// extractor can scan. Conversion is a collaborator boundary: callers
// depend on the Converter interface, and engines that cannot run
// in-process (PDF tooling) live behind it. The shipped converters
// handle HTML and plain text.
package ingestion

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Document is the converter output: markdown-like text for the
// heuristic extractor, a plain-text rendering for fallback paths, and
// any hyperlinks recovered from the document.
type Document struct {
	Markdown  string
	PlainText string
	Links     []string
}

// Converter converts raw document bytes into a Document.
type Converter interface {
	Convert(ctx context.Context, data []byte, filename string) (*Document, error)
}

// ConversionError reports a document that could not be parsed. Callers
// are expected to try a plain-text fallback before surfacing failure.
type ConversionError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conversion failed for %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("conversion failed for %s: %s", e.Filename, e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// TextConverter treats the document bytes as UTF-8 text.
type TextConverter struct{}

// Convert validates and cleans the text. The markdown and plain-text
// renderings are identical for raw text input.
func (TextConverter) Convert(_ context.Context, data []byte, filename string) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, &ConversionError{Filename: filename, Message: "document is not valid UTF-8 text"}
	}
	cleaned := CleanText(string(data))
	if cleaned == "" {
		return nil, &ConversionError{Filename: filename, Message: "document contains no text"}
	}
	return &Document{Markdown: cleaned, PlainText: cleaned}, nil
}

// ForFilename picks a shipped converter by file extension: .html/.htm
// get the HTML converter, everything else is treated as text.
func ForFilename(filename string) Converter {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return HTMLConverter{}
	default:
		return TextConverter{}
	}
}
