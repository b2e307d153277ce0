// Package htmltext converts HTML fragments from upstream feeds into plain text.
// Product descriptions arrive as storefront rich text; exports need the text
// content only, with paragraph and line breaks preserved as newlines.
package htmltext

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	paragraphBreak = regexp.MustCompile(`</p>\s*<p>`)
	lineBreak      = regexp.MustCompile(`<br\s*/?>`)
	anyTag         = regexp.MustCompile(`<[^>]+>`)
	newlineRun     = regexp.MustCompile(`\n+`)
)

// Strip converts an HTML fragment to plain text. Paragraph boundaries and
// <br> tags become newlines, remaining markup is removed and entities are
// decoded. Malformed markup degrades to best-effort tag removal rather
// than an error.
func Strip(fragment string) string {
	// Preserve line structure before the tag stripping flattens it.
	withBreaks := paragraphBreak.ReplaceAllString(fragment, "\n")
	withBreaks = lineBreak.ReplaceAllString(withBreaks, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(withBreaks))
	if err != nil {
		text := anyTag.ReplaceAllString(withBreaks, "")
		return decodeEntities(text)
	}

	return decodeEntities(doc.Text())
}

// CollapseNewlines squeezes runs of newlines to a single newline and trims
// a single leading newline, matching the export description format.
func CollapseNewlines(text string) string {
	collapsed := newlineRun.ReplaceAllString(text, "\n")
	return strings.TrimPrefix(collapsed, "\n")
}

// decodeEntities handles the entities that survive goquery's text extraction
// when the fallback path is taken.
func decodeEntities(text string) string {
	replacer := strings.NewReplacer(
		"&nbsp;", " ",
		"\u00a0", " ",
		"&amp;", "&",
	)
	return replacer.Replace(text)
}
