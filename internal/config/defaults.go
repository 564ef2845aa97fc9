package config

// Application identity
const (
	AppID   = "com.refview.refview"
	AppName = "RefView"
)

// Default window footprint, also restored by the reset action
const (
	DefaultWindowWidth  float32 = 400
	DefaultWindowHeight float32 = 300
)

// Opacity slider range in percent
const (
	OpacitySliderMin  float64 = 10
	OpacitySliderMax  float64 = 100
	OpacitySliderStep float64 = 1
)
