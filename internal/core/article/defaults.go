package article

// DefaultTitle is the title of the article shown before any edit.
const DefaultTitle = "Welcome to Nupedia"

// DefaultContent is the placeholder body shown for every article until it is
// edited. Selecting a different title does not load different content.
const DefaultContent = `Welcome to Nupedia, a modern take on the classic wiki experience.

Nupedia is a collaborative platform where knowledge meets elegant design. Our mission is to provide a clean, intuitive interface for sharing and accessing information.

This platform features a responsive design that works seamlessly across all devices, from desktop computers to mobile phones. Users can easily create, edit, and browse articles with our modern toolset.

The interface takes inspiration from classic wiki platforms while incorporating modern design principles and interactions. We believe that knowledge should be both accessible and beautifully presented.

Key features of Nupedia include real-time previews, a sophisticated editor, and an intuitive navigation system. Whether you're a casual reader or a dedicated contributor, Nupedia provides the tools you need.`

// DefaultSearchHistory returns the titles that seed the recent searches list.
func DefaultSearchHistory() []string {
	return []string{
		"Ancient Rome",
		"Quantum Physics",
		"Renaissance Art",
		"Machine Learning",
	}
}

// Default returns the welcome article.
func Default() Article {
	return Article{Title: DefaultTitle, Content: DefaultContent}
}
