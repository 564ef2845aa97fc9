package model

// RequestKind identifies where the raw image bytes come from.
type RequestKind string

const (
	// RequestURL fetches the image over HTTP from a user-supplied URL
	RequestURL RequestKind = "url"

	// RequestClipboard is a URL sniffed from the system clipboard at startup
	RequestClipboard RequestKind = "clipboard"

	// RequestFile reads the image from a local file (drag-and-drop)
	RequestFile RequestKind = "file"
)

// String returns the string representation of RequestKind
func (rk RequestKind) String() string {
	return string(rk)
}

// ImageRequest describes a single image acquisition: one source kind plus the
// URL or path it carries. Requests are transient; they are built per user
// action and consumed immediately by the resolver.
type ImageRequest struct {
	Kind  RequestKind
	Value string
}

// URLRequest builds a request for an HTTP fetch
func URLRequest(url string) ImageRequest {
	return ImageRequest{Kind: RequestURL, Value: url}
}

// ClipboardRequest builds a request for a clipboard-sniffed URL
func ClipboardRequest(url string) ImageRequest {
	return ImageRequest{Kind: RequestClipboard, Value: url}
}

// FileRequest builds a request for a local file read
func FileRequest(path string) ImageRequest {
	return ImageRequest{Kind: RequestFile, Value: path}
}

// IsRemote returns true if resolving the request touches the network
func (r ImageRequest) IsRemote() bool {
	return r.Kind == RequestURL || r.Kind == RequestClipboard
}
