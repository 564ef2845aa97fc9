package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// DisplayArea hosts the image content and reports size changes to the core.
// Fyne has no per-widget resize event, so the renderer's Layout doubles as
// the resize hook; the callback fires only when the size actually changed.
type DisplayArea struct {
	widget.BaseWidget
	content    fyne.CanvasObject
	onResized  func(width, height int)
	lastWidth  float32
	lastHeight float32
}

// NewDisplayArea creates the image display area with a resize callback
func NewDisplayArea(content fyne.CanvasObject, onResized func(width, height int)) *DisplayArea {
	d := &DisplayArea{content: content, onResized: onResized}
	d.ExtendBaseWidget(d)
	return d
}

// CreateRenderer builds the renderer for the display area
func (d *DisplayArea) CreateRenderer() fyne.WidgetRenderer {
	return &displayAreaRenderer{area: d}
}

type displayAreaRenderer struct {
	area *DisplayArea
}

// Layout fills the area with its content and forwards size changes
func (r *displayAreaRenderer) Layout(size fyne.Size) {
	r.area.content.Resize(size)

	if size.Width == r.area.lastWidth && size.Height == r.area.lastHeight {
		return
	}
	r.area.lastWidth = size.Width
	r.area.lastHeight = size.Height

	if r.area.onResized != nil {
		r.area.onResized(int(size.Width), int(size.Height))
	}
}

// MinSize keeps the area shrinkable while never collapsing entirely
func (r *displayAreaRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ImageAreaMinWidth, ImageAreaMinHeight)
}

// Refresh redraws the hosted content
func (r *displayAreaRenderer) Refresh() {
	r.area.content.Refresh()
}

// Objects returns the rendered objects
func (r *displayAreaRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.area.content}
}

// Destroy releases renderer resources (none held)
func (r *displayAreaRenderer) Destroy() {}
