package ui

// Package ui contains the Fyne-based desktop user interface for the viewer.
// It wires user interactions to the display state service and renders the
// fit bitmap, placeholder, and error text. All UI strings are localized via
// Localization.
