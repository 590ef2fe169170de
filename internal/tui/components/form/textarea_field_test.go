package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/nupedia/pkg/tuitest"
)

func TestTextAreaField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextAreaField("Description", "enter text", "")
		assert.Equal(t, "Description", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextAreaField("Description", "", "hello world")
		assert.Equal(t, "hello world", f.Value())
	})

	t.Run("multi paragraph value round trips", func(t *testing.T) {
		content := "first paragraph\n\nsecond paragraph"
		f := NewTextAreaField("Content", "", content)
		assert.Equal(t, content, f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextAreaField("Description", "", "")
		assert.False(t, f.Focused())

		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextAreaField("Description", "", "")
		field, cmd := f.Update(tuitest.KeyPress('a'))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("enter inserts newline while focused", func(t *testing.T) {
		f := NewTextAreaField("Description", "", "")
		f.Focus()

		var field Field = f
		field, _ = field.Update(tuitest.KeyPress('a'))
		field, _ = field.Update(tuitest.Key(tea.KeyEnter))
		field, _ = field.Update(tuitest.KeyPress('b'))

		assert.Equal(t, "a\nb", field.Value())
	})

	t.Run("view renders label", func(t *testing.T) {
		f := NewTextAreaField("Description", "placeholder", "")
		view := tuitest.StripANSI(f.View())
		assert.Contains(t, view, "Description")
	})
}
