package config

// Package config holds process-lifetime defaults for the viewer. Nothing is
// persisted across runs; every launch starts from these values.
