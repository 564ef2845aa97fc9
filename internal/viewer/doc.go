package viewer

// Package viewer implements the display state machine: it owns the original
// and fit bitmaps, opacity, and the always-on-top flag, and turns UI events
// (load, resize, slider, toggle, reset, drop) into state transitions. The
// window and clipboard are injected ports so the core runs against fakes in
// tests without a display present.
