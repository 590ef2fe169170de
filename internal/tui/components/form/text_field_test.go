package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/nupedia/pkg/tuitest"
)

func TestTextField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextField("Name", "enter name", "")
		assert.Equal(t, "Name", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextField("Name", "enter name", "hello")
		assert.Equal(t, "hello", f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		assert.False(t, f.Focused())

		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		field, cmd := f.Update(tuitest.KeyPress('a'))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("typing while focused", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.Focus()

		var field Field = f
		for _, msg := range tuitest.Type("Go lang") {
			field, _ = field.Update(msg)
		}

		assert.Equal(t, "Go lang", field.Value())
	})

	t.Run("set value", func(t *testing.T) {
		f := NewTextField("Name", "", "old")
		f.SetValue("typed text")
		assert.Equal(t, "typed text", f.Value())

		f.SetValue("")
		assert.Empty(t, f.Value())
	})

	t.Run("set width never collapses", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.SetWidth(0)
		assert.Equal(t, 1, f.input.Width)

		f.SetWidth(30)
		assert.Equal(t, 27, f.input.Width)
	})

	t.Run("view renders label", func(t *testing.T) {
		f := NewTextField("Name", "placeholder", "")
		view := tuitest.StripANSI(f.View())
		assert.Contains(t, view, "Name")
	})
}
