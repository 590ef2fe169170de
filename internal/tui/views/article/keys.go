package article

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the article view key bindings.
type KeyMap struct {
	ToggleSidebar key.Binding
	Edit          key.Binding
	NextSection   key.Binding
	PrevSection   key.Binding
}

// DefaultKeyMap returns the built-in article bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleSidebar: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle contents")),
		Edit:          key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit article")),
		NextSection:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next section")),
		PrevSection:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous section")),
	}
}
