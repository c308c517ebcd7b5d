package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Terminal palette
var (
	TerminalBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	TerminalForeground = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	TerminalDim        = color.RGBA{R: 0, G: 140, B: 0, A: 255}
	TerminalInput      = color.RGBA{R: 10, G: 20, B: 10, A: 255}
)

// TerminalTheme is a compact black-and-green theme with monospace text
type TerminalTheme struct{}

// NewTerminalTheme creates a new terminal theme
func NewTerminalTheme() fyne.Theme {
	return &TerminalTheme{}
}

// Color returns theme colors. The palette is the same for light and dark variants.
func (t *TerminalTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return TerminalBackground
	case theme.ColorNameForeground, theme.ColorNamePrimary, theme.ColorNameFocus:
		return TerminalForeground
	case theme.ColorNameInputBackground, theme.ColorNameButton:
		return TerminalInput
	case theme.ColorNameInputBorder, theme.ColorNameSeparator, theme.ColorNamePlaceHolder, theme.ColorNameScrollBar:
		return TerminalDim
	case theme.ColorNameForegroundOnPrimary:
		return TerminalBackground
	case theme.ColorNameError:
		return color.RGBA{R: 255, G: 80, B: 80, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns the monospace face for every text style
func (t *TerminalTheme) Font(style fyne.TextStyle) fyne.Resource {
	style.Monospace = true
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TerminalTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *TerminalTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputBorder:
		return 1
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		// Square corners
		return 0
	}

	return theme.DefaultTheme().Size(name)
}
