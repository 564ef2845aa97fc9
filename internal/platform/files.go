package platform

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// ReadFile reads a local file after checking it exists, so a missing path
// yields a clear message instead of a bare syscall error
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// DroppedPaths filters a drag-and-drop payload down to local file paths.
// Non-file URIs are skipped; an empty result means the drop carries nothing
// the viewer can load.
func DroppedPaths(uris []fyne.URI) []string {
	var paths []string
	for _, uri := range uris {
		if uri == nil {
			continue
		}
		if uri.Scheme() != "file" {
			continue
		}
		if path := uri.Path(); path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}

// FileURI builds a file URI for a local path, used when echoing a dropped
// path back into UI widgets
func FileURI(path string) fyne.URI {
	return storage.NewFileURI(path)
}
