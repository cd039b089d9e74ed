package ingestion

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLConverter extracts text and hyperlinks from HTML resumes.
type HTMLConverter struct{}

// Convert parses the HTML, drops script/style content, and rebuilds a
// line-oriented text rendering. Headings are emitted as their own
// lines so the section scanner can key on them; list items become
// bulleted lines. All anchor hrefs (http, https, mailto) are collected
// as document links.
func (HTMLConverter) Convert(_ context.Context, data []byte, filename string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ConversionError{Filename: filename, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()

	var lines []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			lines = append(lines, "- "+text)
			return
		}
		lines = append(lines, text)
	})

	markdown := CleanText(strings.Join(lines, "\n"))
	if markdown == "" {
		// No block elements; fall back to the whole-body text.
		markdown = CleanText(doc.Find("body").Text())
	}
	if markdown == "" {
		return nil, &ConversionError{Filename: filename, Message: "document contains no text"}
	}

	return &Document{
		Markdown:  markdown,
		PlainText: CleanText(doc.Find("body").Text()),
		Links:     extractLinks(doc),
	}, nil
}

// extractLinks returns the deduplicated hrefs of all anchors, keeping
// only http(s) and mailto targets in document order.
func extractLinks(doc *goquery.Document) []string {
	var links []string
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || seen[href] {
			return
		}
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") && !strings.HasPrefix(href, "mailto:") {
			return
		}
		seen[href] = true
		links = append(links, href)
	})
	return links
}
