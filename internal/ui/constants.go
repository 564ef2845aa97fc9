package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Layout sizing
const (
	ImageAreaMinWidth  float32 = 120
	ImageAreaMinHeight float32 = 120

	ControlRowPadding float32 = 4
)

// Icons (emojis/symbols)
const (
	IconPin   = "📌"
	IconReset = "↺"
)

// Text fragments
const (
	OnSuffix  = " (ON)"
	OffSuffix = " (OFF)"
)
