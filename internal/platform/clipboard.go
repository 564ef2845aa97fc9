package platform

import "fyne.io/fyne/v2"

// AppClipboard adapts the Fyne clipboard to the viewer's read-only port
type AppClipboard struct {
	app fyne.App
}

// NewAppClipboard wraps the clipboard of a running Fyne app
func NewAppClipboard(app fyne.App) *AppClipboard {
	return &AppClipboard{app: app}
}

// Text returns the current clipboard text, or "" when unavailable
func (c *AppClipboard) Text() string {
	if c.app == nil {
		return ""
	}
	clipboard := c.app.Clipboard()
	if clipboard == nil {
		return ""
	}
	return clipboard.Content()
}
