package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit(t *testing.T) {
	cmd := Emit(SavedMsg{Title: "t", Content: "c"})
	require.NotNil(t, cmd)
	assert.Equal(t, SavedMsg{Title: "t", Content: "c"}, cmd())
}
