package source

// Package source implements image acquisition: it resolves an ImageRequest
// into raw image bytes via HTTP GET or a local file read, and provides the
// clipboard URL sniff used at startup. It performs no caching and no retries.
