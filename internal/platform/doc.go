package platform

// Package platform contains OS/platform integration glue: read-only
// filesystem helpers, drag-and-drop payload handling, and clipboard access.
