package model

import (
	"fmt"
	"strings"
	"time"
)

// LoadTask tracks a single image load from request to bitmap
type LoadTask struct {
	ID         string
	Request    ImageRequest
	Status     LoadStatus
	LastError  string    // last error message if any
	Width      int       // decoded bitmap width, 0 until decoded
	Height     int       // decoded bitmap height, 0 until decoded
	StartedAt  time.Time // when the load started
	FinishedAt time.Time // when the load finished
}

// GetDisplaySource returns a short human-readable description of the source
func (lt *LoadTask) GetDisplaySource() string {
	switch lt.Request.Kind {
	case RequestFile:
		// Extract just the filename without path (support both / and \ separators)
		parts := strings.FieldsFunc(lt.Request.Value, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
		return lt.Request.Value
	default:
		return lt.Request.Value
	}
}

// GetDimensionsString returns "WxH" once decoded, or "—" before that
func (lt *LoadTask) GetDimensionsString() string {
	if lt.Width <= 0 || lt.Height <= 0 {
		return "—"
	}
	return fmt.Sprintf("%dx%d", lt.Width, lt.Height)
}
