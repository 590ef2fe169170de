package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Contains(t, names, DefaultTheme)
	assert.IsIncreasing(t, names)
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette("gruvbox")
	require.True(t, ok)
	assert.Equal(t, "#83a598", string(p.Primary))

	_, ok = GetPalette("does-not-exist")
	assert.False(t, ok)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, _ := GetPalette("paper")
	SetTheme(p)

	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Primary, ColorPrimary)
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()

	require.NotNil(t, cfg.Paragraph.Color)
	assert.Equal(t, "#c0caf5", *cfg.Paragraph.Color)
	require.NotNil(t, cfg.Document.Margin)
	assert.Zero(t, *cfg.Document.Margin)
}

func TestColorHexPtr(t *testing.T) {
	assert.Nil(t, colorHexPtr(""))
	assert.Nil(t, colorHexPtr("not-a-color"))

	hex := colorHexPtr("#7AA2F7")
	require.NotNil(t, hex)
	assert.Equal(t, "#7aa2f7", *hex)
}
