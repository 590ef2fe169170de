package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "three paragraphs",
			content: "A\n\nB\n\nC",
			want:    []string{"A", "B", "C"},
		},
		{
			name:    "extra blank line is dropped",
			content: "A\n\n\n\nB",
			want:    []string{"A", "B"},
		},
		{
			name:    "single newline stays inside a section",
			content: "line one\nline two\n\nnext",
			want:    []string{"line one\nline two", "next"},
		},
		{
			name:    "empty content",
			content: "",
			want:    []string{},
		},
		{
			name:    "leading and trailing delimiters",
			content: "\n\nA\n\n",
			want:    []string{"A"},
		},
		{
			name:    "whitespace-only section is kept",
			content: "A\n\n \n\nB",
			want:    []string{"A", " ", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sections(tt.content))
		})
	}
}

func TestArticle_Sections(t *testing.T) {
	a := Default()
	assert.Len(t, a.Sections(), 5)
	assert.Equal(t, "Welcome to Nupedia, a modern take on the classic wiki experience.", a.Sections()[0])
}

func TestTOCLabel(t *testing.T) {
	tests := []struct {
		section string
		want    string
	}{
		{"The quick brown fox jumps", "The quick brown..."},
		{"Short one", "Short one..."},
		{"Exactly three words", "Exactly three words..."},
		{"  padded   words\tand more", "padded words and..."},
		{"", "..."},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, TOCLabel(tt.section))
		})
	}
}

func TestTableOfContents(t *testing.T) {
	entries := TableOfContents(Sections("Alpha beta gamma delta\n\nOne two"))

	require.Len(t, entries, 2)
	assert.Equal(t, TOCEntry{Index: 0, Anchor: "section-0", Label: "Alpha beta gamma..."}, entries[0])
	assert.Equal(t, TOCEntry{Index: 1, Anchor: "section-1", Label: "One two..."}, entries[1])
}

func TestTableOfContents_Empty(t *testing.T) {
	assert.Empty(t, TableOfContents(nil))
}

func TestRecommendedTopics(t *testing.T) {
	topics := RecommendedTopics()
	require.Len(t, topics, 3)
	assert.Equal(t, "Artificial Intelligence", topics[0].Title)
	assert.Equal(t, "World History", topics[1].Title)
	assert.Equal(t, "Science & Technology", topics[2].Title)

	topics[0].Title = "mutated"
	assert.Equal(t, "Artificial Intelligence", RecommendedTopics()[0].Title)
}
