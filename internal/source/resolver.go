package source

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/refview/refview/internal/model"
	"github.com/refview/refview/internal/platform"
)

// HTTP client defaults
const (
	DefaultFetchTimeout = 30 * time.Second

	// MaxImageBytes bounds the response body read so a misbehaving server
	// cannot exhaust memory.
	MaxImageBytes = 64 << 20 // 64 MiB
)

// ImageURLSuffixes are the extensions accepted by the clipboard sniff
var ImageURLSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".svg"}

// FileReader reads a local file; injected so tests run without real files
type FileReader func(path string) ([]byte, error)

// Resolver turns an ImageRequest into raw image bytes
type Resolver struct {
	client   *http.Client
	readFile FileReader
}

// NewResolver creates a resolver with the default HTTP client and file reader
func NewResolver() *Resolver {
	return &Resolver{
		client:   &http.Client{Timeout: DefaultFetchTimeout},
		readFile: platform.ReadFile,
	}
}

// NewResolverWith creates a resolver with injected collaborators for testing
func NewResolverWith(client *http.Client, readFile FileReader) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	if readFile == nil {
		readFile = platform.ReadFile
	}
	return &Resolver{client: client, readFile: readFile}
}

// Resolve acquires the raw bytes for a request. URL and clipboard requests
// are fetched over HTTP; file requests are read from disk. Failures come back
// as *AcquisitionError with the matching kind.
func (r *Resolver) Resolve(ctx context.Context, request model.ImageRequest) ([]byte, error) {
	switch request.Kind {
	case model.RequestURL, model.RequestClipboard:
		return r.fetchURL(ctx, request.Value)
	case model.RequestFile:
		data, err := r.readFile(request.Value)
		if err != nil {
			return nil, fileSystemError("read %s: %w", request.Value, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown request kind: %s", request.Kind)
	}
}

// fetchURL issues a plain GET and returns the full response body.
// Any non-2xx status is a network failure.
func (r *Resolver) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, networkError("invalid URL %q: %w", url, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, networkError("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, networkError("fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes))
	if err != nil {
		return nil, networkError("read response from %s: %w", url, err)
	}

	log.Printf("Fetched %d bytes from %s", len(data), url)
	return data, nil
}

// IsImageURL reports whether s looks like an image URL by extension. This is
// the clipboard gate: intentionally naive, suffix-based, case-insensitive.
func IsImageURL(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, suffix := range ImageURLSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
