package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestTerminalTheme_Palette(t *testing.T) {
	th := NewTerminalTheme()

	for _, variant := range []fyne.ThemeVariant{theme.VariantDark, theme.VariantLight} {
		assert.Equal(t, TerminalBackground, th.Color(theme.ColorNameBackground, variant))
		assert.Equal(t, TerminalForeground, th.Color(theme.ColorNameForeground, variant))
		assert.Equal(t, TerminalForeground, th.Color(theme.ColorNamePrimary, variant))
	}
}

func TestTerminalTheme_Monospace(t *testing.T) {
	th := NewTerminalTheme()
	mono := theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true})

	assert.Equal(t, mono, th.Font(fyne.TextStyle{}))
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true, Bold: true}), th.Font(fyne.TextStyle{Bold: true}))
}

func TestTerminalTheme_CompactSizes(t *testing.T) {
	th := NewTerminalTheme()

	assert.Equal(t, float32(13), th.Size(theme.SizeNameText))
	assert.Equal(t, float32(0), th.Size(theme.SizeNameInputRadius))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameInlineIcon), th.Size(theme.SizeNameInlineIcon))
}
