package viewer

import (
	"github.com/refview/refview/internal/model"
)

// Viewer defines the interface for the display state service.
type Viewer interface {
	SetUpdateCallback(func(*Update))
	LoadFrom(request model.ImageRequest)
	OnResized(width, height int)
	OnOpacitySlider(value float64)
	OnToggleAlwaysOnTop()
	OnReset()
	OnDrop(paths []string)
	SniffClipboard() (string, bool)
	State() Snapshot
}

// Shell is the presentation port the core drives. The window toolkit
// implements it; tests use a fake.
type Shell interface {
	// DisplayAreaSize returns the current image area size in logical units.
	// Either dimension may be zero before layout.
	DisplayAreaSize() (int, int)

	// ApplyOpacity applies window opacity in [0.1, 1.0] immediately
	ApplyOpacity(opacity float64)

	// SetAlwaysOnTop records the desired always-on-top flag
	SetAlwaysOnTop(onTop bool)

	// ReapplyWindowFlags re-shows the window so the platform honors flag
	// changes; required after every always-on-top transition
	ReapplyWindowFlags()

	// ResetWindowSize restores the default window footprint
	ResetWindowSize()
}

// Clipboard provides read-only access to the system clipboard text
type Clipboard interface {
	Text() string
}
