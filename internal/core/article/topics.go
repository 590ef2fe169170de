package article

import "slices"

// Topic is a recommended entry point shown on the home page.
type Topic struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var recommendedTopics = [...]Topic{
	{
		Title:       "Artificial Intelligence",
		Description: "Explore the fundamentals of AI and machine learning",
	},
	{
		Title:       "World History",
		Description: "Journey through significant historical events",
	},
	{
		Title:       "Science & Technology",
		Description: "Latest developments in science and tech",
	},
}

// RecommendedTopics returns the fixed set of recommended topics.
func RecommendedTopics() []Topic {
	return slices.Clone(recommendedTopics[:])
}
