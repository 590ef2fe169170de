// Package article defines the wiki content types and the pure text helpers
// used to render them.
package article

import (
	"fmt"
	"strings"
)

// SectionDelimiter separates paragraphs in article content.
const SectionDelimiter = "\n\n"

// tocLabelWords is the number of leading words shown for a TOC entry.
const tocLabelWords = 3

// Article is the single active wiki page.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Sections returns the article's paragraph sections.
func (a Article) Sections() []string {
	return Sections(a.Content)
}

// Sections splits content on blank-line delimiters and drops empty results.
// Whitespace-only sections are kept.
func Sections(content string) []string {
	parts := strings.Split(content, SectionDelimiter)

	sections := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		sections = append(sections, p)
	}
	return sections
}

// TOCEntry is a single table of contents anchor.
type TOCEntry struct {
	Index  int    `json:"index"`
	Anchor string `json:"anchor"`
	Label  string `json:"label"`
}

// TableOfContents derives one entry per section, in order.
func TableOfContents(sections []string) []TOCEntry {
	entries := make([]TOCEntry, len(sections))
	for i, s := range sections {
		entries[i] = TOCEntry{
			Index:  i,
			Anchor: fmt.Sprintf("section-%d", i),
			Label:  TOCLabel(s),
		}
	}
	return entries
}

// TOCLabel returns the first three words of a section followed by an
// ellipsis. The ellipsis is always appended, even for short sections.
func TOCLabel(section string) string {
	words := strings.Fields(section)
	if len(words) > tocLabelWords {
		words = words[:tocLabelWords]
	}
	return strings.Join(words, " ") + "..."
}
