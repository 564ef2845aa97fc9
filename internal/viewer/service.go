package viewer

import (
	"context"
	"fmt"
	"image"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/refview/refview/internal/imaging"
	"github.com/refview/refview/internal/model"
	"github.com/refview/refview/internal/source"
)

// Opacity bounds match the slider range: percent values in [10, 100]
const (
	MinOpacityPercent     = 10
	MaxOpacityPercent     = 100
	DefaultOpacityPercent = 100

	OpacityLabelFormat = "Window Opacity: %d%%"
	ErrorTextPrefix    = "Error loading image: "
)

// Update is the state snapshot pushed to the shell after every transition
type Update struct {
	Fit            image.Image // nil when no image is loaded
	ErrorText      string      // non-empty when the image area shows an error
	Task           *model.LoadTask
	OpacityPercent int
	OpacityLabel   string
	AlwaysOnTop    bool
}

// Snapshot exposes the current display state for inspection
type Snapshot struct {
	HasImage       bool
	FitWidth       int
	FitHeight      int
	ErrorText      string
	Opacity        float64
	OpacityPercent int
	AlwaysOnTop    bool
}

// Service owns the display state and handles all UI events
type Service struct {
	mu             sync.RWMutex
	original       image.Image
	fit            image.Image
	errorText      string
	opacityPercent int
	alwaysOnTop    bool
	task           *model.LoadTask

	// loadGen increments per issued load; only the newest load's result is
	// applied, so overlapping results cannot arrive out of order
	loadGen uint64

	resolver  *source.Resolver
	shell     Shell
	clipboard Clipboard
	onUpdate  func(*Update)
}

// NewService creates the display state service with its shell and clipboard
// ports. A nil resolver falls back to the default HTTP/file resolver.
func NewService(resolver *source.Resolver, shell Shell, clipboard Clipboard) *Service {
	if resolver == nil {
		resolver = source.NewResolver()
	}
	return &Service{
		resolver:       resolver,
		shell:          shell,
		clipboard:      clipboard,
		opacityPercent: DefaultOpacityPercent,
	}
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(*Update)) {
	s.onUpdate = callback
}

// LoadFrom starts loading an image from the given request. The fetch and
// decode run on their own goroutine; a newer request supersedes any result
// still in flight.
func (s *Service) LoadFrom(request model.ImageRequest) {
	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	task := &model.LoadTask{
		ID:        uuid.NewString(),
		Request:   request,
		Status:    model.LoadStatusFetching,
		StartedAt: time.Now(),
	}
	s.task = task
	s.mu.Unlock()

	log.Printf("Load %s started: kind=%s source=%s", task.ID, request.Kind, request.Value)
	s.notifyUpdate()

	go s.runLoad(gen, task)
}

// runLoad resolves and decodes one request, then applies the result if the
// request is still the newest one
func (s *Service) runLoad(gen uint64, task *model.LoadTask) {
	data, err := s.resolver.Resolve(context.Background(), task.Request)
	if err != nil {
		s.finishWithError(gen, task, err)
		return
	}

	s.setTaskStatus(gen, task, model.LoadStatusDecoding)

	bitmap, err := imaging.Decode(data)
	if err != nil {
		s.finishWithError(gen, task, err)
		return
	}

	s.applyBitmap(gen, task, bitmap)
}

// setTaskStatus advances the task status unless the load was superseded
func (s *Service) setTaskStatus(gen uint64, task *model.LoadTask, status model.LoadStatus) {
	s.mu.Lock()
	if gen != s.loadGen {
		s.mu.Unlock()
		return
	}
	task.Status = status
	s.mu.Unlock()

	s.notifyUpdate()
}

// applyBitmap installs a decoded bitmap as the new original and recomputes
// the fit bitmap for the current display area
func (s *Service) applyBitmap(gen uint64, task *model.LoadTask, bitmap image.Image) {
	areaWidth, areaHeight := s.shell.DisplayAreaSize()

	s.mu.Lock()
	if gen != s.loadGen {
		s.mu.Unlock()
		log.Printf("Load %s superseded, dropping decoded bitmap", task.ID)
		return
	}

	bounds := bitmap.Bounds()
	s.original = bitmap
	s.fit = imaging.Refit(bitmap, areaWidth, areaHeight)
	s.errorText = ""

	task.Status = model.LoadStatusCompleted
	task.Width = bounds.Dx()
	task.Height = bounds.Dy()
	task.FinishedAt = time.Now()
	s.mu.Unlock()

	log.Printf("Load %s completed: %dx%d", task.ID, bounds.Dx(), bounds.Dy())
	s.notifyUpdate()
}

// finishWithError surfaces a fetch or decode failure as display text while
// leaving the rest of the state untouched
func (s *Service) finishWithError(gen uint64, task *model.LoadTask, err error) {
	s.mu.Lock()
	if gen != s.loadGen {
		s.mu.Unlock()
		return
	}

	s.errorText = ErrorTextPrefix + err.Error()
	task.Status = model.LoadStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.mu.Unlock()

	log.Printf("Load %s failed: %v", task.ID, err)
	s.notifyUpdate()
}

// OnResized recomputes the fit bitmap for a new display area size.
// No-op while no image is loaded.
func (s *Service) OnResized(width, height int) {
	s.mu.Lock()
	if s.original == nil {
		s.mu.Unlock()
		return
	}
	s.fit = imaging.Refit(s.original, width, height)
	s.mu.Unlock()

	s.notifyUpdate()
}

// OnOpacitySlider handles an opacity slider change. Values clamp to the
// [10, 100] percent range and apply to the window immediately.
func (s *Service) OnOpacitySlider(value float64) {
	percent := int(value)
	if percent < MinOpacityPercent {
		percent = MinOpacityPercent
	}
	if percent > MaxOpacityPercent {
		percent = MaxOpacityPercent
	}

	s.mu.Lock()
	s.opacityPercent = percent
	s.mu.Unlock()

	s.shell.ApplyOpacity(float64(percent) / 100.0)
	s.notifyUpdate()
}

// OnToggleAlwaysOnTop flips the always-on-top flag. The window must be
// re-shown for the platform to honor the change.
func (s *Service) OnToggleAlwaysOnTop() {
	s.mu.Lock()
	s.alwaysOnTop = !s.alwaysOnTop
	onTop := s.alwaysOnTop
	s.mu.Unlock()

	log.Printf("Always-on-top toggled: %v", onTop)
	s.shell.SetAlwaysOnTop(onTop)
	s.shell.ReapplyWindowFlags()
	s.notifyUpdate()
}

// OnReset returns the display state to its initial values: no image, full
// opacity, always-on-top off, default window size
func (s *Service) OnReset() {
	s.mu.Lock()
	s.loadGen++ // any in-flight load result is dropped
	s.original = nil
	s.fit = nil
	s.errorText = ""
	s.task = nil
	s.opacityPercent = DefaultOpacityPercent
	s.alwaysOnTop = false
	s.mu.Unlock()

	log.Printf("Display state reset")
	s.shell.SetAlwaysOnTop(false)
	s.shell.ApplyOpacity(1.0)
	s.shell.ResetWindowSize()
	s.shell.ReapplyWindowFlags()
	s.notifyUpdate()
}

// OnDrop loads the first local file of a drop payload. Drops carrying no
// file references are ignored.
func (s *Service) OnDrop(paths []string) {
	if len(paths) == 0 {
		log.Printf("Drop ignored: no file paths in payload")
		return
	}
	s.LoadFrom(model.FileRequest(paths[0]))
}

// SniffClipboard reads the clipboard once and starts a load if the text
// looks like an image URL. Returns the URL and whether a load was dispatched;
// non-matching text is silently ignored.
func (s *Service) SniffClipboard() (string, bool) {
	if s.clipboard == nil {
		return "", false
	}

	text := strings.TrimSpace(s.clipboard.Text())
	if !source.IsImageURL(text) {
		return "", false
	}

	log.Printf("Clipboard sniff matched image URL: %s", text)
	s.LoadFrom(model.ClipboardRequest(text))
	return text, true
}

// State returns a snapshot of the current display state
func (s *Service) State() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := Snapshot{
		HasImage:       s.original != nil,
		ErrorText:      s.errorText,
		Opacity:        float64(s.opacityPercent) / 100.0,
		OpacityPercent: s.opacityPercent,
		AlwaysOnTop:    s.alwaysOnTop,
	}
	if s.fit != nil {
		bounds := s.fit.Bounds()
		snapshot.FitWidth = bounds.Dx()
		snapshot.FitHeight = bounds.Dy()
	}
	return snapshot
}

// notifyUpdate pushes the current state to the shell callback
func (s *Service) notifyUpdate() {
	if s.onUpdate == nil {
		return
	}

	s.mu.RLock()
	update := &Update{
		Fit:            s.fit,
		ErrorText:      s.errorText,
		Task:           s.task,
		OpacityPercent: s.opacityPercent,
		OpacityLabel:   fmt.Sprintf(OpacityLabelFormat, s.opacityPercent),
		AlwaysOnTop:    s.alwaysOnTop,
	}
	s.mu.RUnlock()

	s.onUpdate(update)
}
