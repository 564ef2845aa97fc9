package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/refview/refview/internal/model"
)

func TestResolve_URL(t *testing.T) {
	payload := []byte("not-really-a-png-but-bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	resolver := NewResolver()
	data, err := resolver.Resolve(context.Background(), model.URLRequest(server.URL+"/pic.png"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("Resolve returned %q, expected %q", data, payload)
	}
}

func TestResolve_URLNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	resolver := NewResolver()
	_, err := resolver.Resolve(context.Background(), model.URLRequest(server.URL+"/missing.png"))
	if err == nil {
		t.Fatal("Expected error for 404 response, got nil")
	}

	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("Expected *AcquisitionError, got %T", err)
	}
	if acqErr.Kind != KindNetwork {
		t.Errorf("Expected kind %s, got %s", KindNetwork, acqErr.Kind)
	}
}

func TestResolve_URLUnreachable(t *testing.T) {
	resolver := NewResolver()
	_, err := resolver.Resolve(context.Background(), model.URLRequest("http://127.0.0.1:1/pic.png"))
	if err == nil {
		t.Fatal("Expected error for unreachable host, got nil")
	}

	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) || acqErr.Kind != KindNetwork {
		t.Errorf("Expected network acquisition error, got %v", err)
	}
}

func TestResolve_File(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "pic.png")
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	resolver := NewResolver()
	data, err := resolver.Resolve(context.Background(), model.FileRequest(path))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(data) != len(payload) {
		t.Errorf("Resolve returned %d bytes, expected %d", len(data), len(payload))
	}
}

func TestResolve_FileMissing(t *testing.T) {
	resolver := NewResolver()
	_, err := resolver.Resolve(context.Background(), model.FileRequest(filepath.Join(t.TempDir(), "nope.png")))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}

	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Fatalf("Expected *AcquisitionError, got %T", err)
	}
	if acqErr.Kind != KindFileSystem {
		t.Errorf("Expected kind %s, got %s", KindFileSystem, acqErr.Kind)
	}
}

func TestResolve_InjectedFileReader(t *testing.T) {
	resolver := NewResolverWith(nil, func(path string) ([]byte, error) {
		if path != "/fake/pic.jpg" {
			t.Errorf("Unexpected path: %s", path)
		}
		return []byte("fake-bytes"), nil
	})

	data, err := resolver.Resolve(context.Background(), model.FileRequest("/fake/pic.jpg"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if string(data) != "fake-bytes" {
		t.Errorf("Resolve returned %q, expected fake-bytes", data)
	}
}

func TestIsImageURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://example.com/a.png", true},
		{"https://example.com/a.jpg", true},
		{"https://example.com/a.jpeg", true},
		{"https://example.com/a.gif", true},
		{"https://example.com/a.svg", true},
		{"https://example.com/a.PNG", true},
		{"  https://example.com/a.png  ", true},
		{"https://example.com/a.webp", false},
		{"https://example.com/page.html", false},
		{"just some clipboard text", false},
		{"", false},
	}

	for _, test := range tests {
		result := IsImageURL(test.input)
		if result != test.expected {
			t.Errorf("IsImageURL(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}
