package source

import "fmt"

// ErrorKind classifies acquisition failures
type ErrorKind string

const (
	// KindNetwork covers transport failures and non-2xx HTTP responses
	KindNetwork ErrorKind = "network"

	// KindFileSystem covers missing or unreadable local files
	KindFileSystem ErrorKind = "filesystem"
)

// AcquisitionError reports a failed image acquisition with its kind
type AcquisitionError struct {
	Kind ErrorKind
	Err  error
}

// Error returns the underlying failure description
func (e *AcquisitionError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the wrapped error for errors.Is/As
func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// networkError wraps err as a network acquisition failure
func networkError(format string, args ...any) *AcquisitionError {
	return &AcquisitionError{Kind: KindNetwork, Err: fmt.Errorf(format, args...)}
}

// fileSystemError wraps err as a filesystem acquisition failure
func fileSystemError(format string, args ...any) *AcquisitionError {
	return &AcquisitionError{Kind: KindFileSystem, Err: fmt.Errorf(format, args...)}
}
