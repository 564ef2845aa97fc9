package ui

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/refview/refview/internal/config"
	"github.com/refview/refview/internal/model"
	"github.com/refview/refview/internal/platform"
	"github.com/refview/refview/internal/source"
	"github.com/refview/refview/internal/viewer"
)

// RootUI represents the main UI structure. It renders the viewer state and
// implements the viewer.Shell port for the display state service.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	viewerSvc    viewer.Viewer
	localization *Localization

	urlEntry      *widget.Entry
	loadBtn       *widget.Button
	resetBtn      *widget.Button
	topToggleBtn  *widget.Button
	opacitySlider *widget.Slider
	opacityLabel  *widget.Label
	imageCanvas   *canvas.Image
	messageLabel  *widget.Label
	displayArea   *DisplayArea
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	// Initialize localization
	localization := NewLocalization()

	ui := &RootUI{
		window:       window,
		app:          app,
		localization: localization,
	}

	// The UI is the shell port of the display state service
	ui.viewerSvc = viewer.NewService(source.NewResolver(), ui, platform.NewAppClipboard(app))
	ui.viewerSvc.SetUpdateCallback(ui.onViewerUpdate)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Auto-fetch an image URL from the clipboard, once at startup
	if sniffed, ok := ui.viewerSvc.SniffClipboard(); ok {
		ui.urlEntry.SetText(sniffed)
	}

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyPasteImageURL))
	ui.urlEntry.Validator = ui.validateURL
	// Trigger the load when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onLoadClick()
	}

	// Create load button
	ui.loadBtn = widget.NewButton(ui.localization.GetText(KeyLoadFromURL), ui.onLoadClick)

	// Create image area: the canvas draws the fit bitmap, the label shows
	// the drop prompt or an error in its place
	ui.imageCanvas = canvas.NewImageFromImage(nil)
	ui.imageCanvas.FillMode = canvas.ImageFillContain
	ui.imageCanvas.ScaleMode = canvas.ImageScaleSmooth
	ui.imageCanvas.Hide()

	ui.messageLabel = widget.NewLabel(ui.localization.GetText(KeyDropPrompt))
	ui.messageLabel.Alignment = fyne.TextAlignCenter
	ui.messageLabel.Wrapping = fyne.TextWrapWord

	areaContent := container.NewStack(ui.imageCanvas, container.NewCenter(ui.messageLabel))
	ui.displayArea = NewDisplayArea(areaContent, ui.viewerSvc.OnResized)

	// Create reset button
	ui.resetBtn = widget.NewButton(ui.localization.GetText(KeyReset), ui.onResetClick)

	// Create opacity slider with its percentage label
	ui.opacitySlider = widget.NewSlider(config.OpacitySliderMin, config.OpacitySliderMax)
	ui.opacitySlider.Step = config.OpacitySliderStep
	ui.opacitySlider.Value = config.OpacitySliderMax
	ui.opacitySlider.OnChanged = ui.viewerSvc.OnOpacitySlider

	ui.opacityLabel = widget.NewLabel(fmt.Sprintf(viewer.OpacityLabelFormat, viewer.DefaultOpacityPercent))
	ui.opacityLabel.Alignment = fyne.TextAlignCenter

	// Create always-on-top toggle button
	ui.topToggleBtn = widget.NewButton(ui.toggleButtonText(false), ui.onToggleTopClick)

	// Assemble the layout: URL row on top, controls at the bottom, image
	// area filling the center
	topPanel := container.NewVBox(ui.urlEntry, ui.loadBtn)
	bottomPanel := container.NewVBox(
		ui.resetBtn,
		ui.opacitySlider,
		ui.opacityLabel,
		ui.topToggleBtn,
	)

	content := container.NewBorder(
		topPanel,       // top
		bottomPanel,    // bottom
		nil,            // left
		nil,            // right
		ui.displayArea, // center
	)

	ui.window.SetContent(content)

	// Forward file drops into the core; non-file payloads are ignored there
	ui.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		paths := platform.DroppedPaths(uris)
		log.Printf("Drop received with %d file path(s)", len(paths))
		ui.viewerSvc.OnDrop(paths)
	})

	log.Printf("UI setup completed successfully")
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onLoadClick handles the load button click
func (ui *RootUI) onLoadClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPleaseEnterURL)), ui.window.Canvas())
		return
	}

	if err := ui.validateURL(urlText); err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInvalidURL)+": "+err.Error()), ui.window.Canvas())
		return
	}

	log.Printf("Loading image from URL: %s", urlText)
	ui.viewerSvc.LoadFrom(model.URLRequest(urlText))
}

// onResetClick handles the reset button click
func (ui *RootUI) onResetClick() {
	ui.urlEntry.SetText("")
	ui.viewerSvc.OnReset()
}

// onToggleTopClick handles the always-on-top toggle button click
func (ui *RootUI) onToggleTopClick() {
	ui.viewerSvc.OnToggleAlwaysOnTop()
}

// toggleButtonText returns the toggle button label for the given state
func (ui *RootUI) toggleButtonText(onTop bool) string {
	if onTop {
		return ui.localization.GetText(KeyToggleOnTop) + OnSuffix
	}
	return ui.localization.GetText(KeyToggleOnTop) + OffSuffix
}

// onViewerUpdate renders a state update from the display state service
func (ui *RootUI) onViewerUpdate(update *viewer.Update) {
	fyne.Do(func() {
		switch {
		case update.ErrorText != "":
			ui.messageLabel.SetText(update.ErrorText)
			ui.messageLabel.Show()
			ui.imageCanvas.Hide()
		case update.Fit != nil:
			ui.imageCanvas.Image = update.Fit
			ui.imageCanvas.Show()
			ui.imageCanvas.Refresh()
			ui.messageLabel.Hide()
		default:
			ui.messageLabel.SetText(ui.localization.GetText(KeyDropPrompt))
			ui.messageLabel.Show()
			ui.imageCanvas.Image = nil
			ui.imageCanvas.Hide()
		}

		ui.opacityLabel.SetText(update.OpacityLabel)
		if ui.opacitySlider.Value != float64(update.OpacityPercent) {
			ui.opacitySlider.Value = float64(update.OpacityPercent)
			ui.opacitySlider.Refresh()
		}

		ui.topToggleBtn.SetText(ui.toggleButtonText(update.AlwaysOnTop))
	})
}

// DisplayAreaSize implements viewer.Shell: the current image area size
func (ui *RootUI) DisplayAreaSize() (int, int) {
	if ui.displayArea == nil {
		return 0, 0
	}
	size := ui.displayArea.Size()
	return int(size.Width), int(size.Height)
}

// ApplyOpacity implements viewer.Shell. Fyne exposes no portable per-window
// opacity, so the nearest equivalent is translucency of the rendered image.
func (ui *RootUI) ApplyOpacity(opacity float64) {
	fyne.Do(func() {
		ui.imageCanvas.Translucency = 1.0 - opacity
		ui.imageCanvas.Refresh()
	})
}

// SetAlwaysOnTop implements viewer.Shell; the flag takes effect on the next
// ReapplyWindowFlags call
func (ui *RootUI) SetAlwaysOnTop(onTop bool) {
	log.Printf("Always-on-top flag set: %v", onTop)
}

// ReapplyWindowFlags implements viewer.Shell: re-show the window so the
// platform picks up changed flags
func (ui *RootUI) ReapplyWindowFlags() {
	fyne.Do(func() {
		ui.window.Show()
	})
}

// ResetWindowSize implements viewer.Shell: restore the default footprint
func (ui *RootUI) ResetWindowSize() {
	fyne.Do(func() {
		ui.window.Resize(fyne.NewSize(config.DefaultWindowWidth, config.DefaultWindowHeight))
	})
}
