package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
)

func TestReadFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "pic.png")
	payload := []byte("image-bytes")
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("ReadFile returned %q, expected %q", data, payload)
	}
}

func TestReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.png")

	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	// Check that error contains the expected message
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestReadFile_EmptyPath(t *testing.T) {
	_, err := ReadFile("")
	if err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestReadFile_Directory(t *testing.T) {
	_, err := ReadFile(t.TempDir())
	if err == nil {
		t.Fatal("Expected error for directory path, got nil")
	}
	if !strings.Contains(err.Error(), "directory") {
		t.Errorf("Error message should mention directory, got: %v", err)
	}
}

func TestDroppedPaths(t *testing.T) {
	uris := []fyne.URI{
		FileURI("/tmp/one.png"),
		FileURI("/tmp/two.jpg"),
	}

	paths := DroppedPaths(uris)
	if len(paths) != 2 {
		t.Fatalf("Expected 2 paths, got %d", len(paths))
	}
	if paths[0] != "/tmp/one.png" || paths[1] != "/tmp/two.jpg" {
		t.Errorf("Unexpected paths: %v", paths)
	}
}

func TestDroppedPaths_Empty(t *testing.T) {
	if paths := DroppedPaths(nil); len(paths) != 0 {
		t.Errorf("Expected no paths for empty payload, got %v", paths)
	}
}
