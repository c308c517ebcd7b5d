package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconSave     = "💾"
	IconFolder   = "📁"
)

// Window sizing
const (
	MainWindowWidth  float32 = 1100
	MainWindowHeight float32 = 760

	// Log panel width relative to the whole split
	LogPanelOffset = 0.72

	PreviewMaxWidth  float32 = 1280
	PreviewMaxHeight float32 = 900
	PreviewMinWidth  float32 = 320
	PreviewMinHeight float32 = 240
)

// Tile sizing
const (
	TileCaptionLines         = 3
	TilePadding      float32 = 10
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 480
)
