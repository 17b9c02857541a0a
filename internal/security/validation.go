// Package security provides input validation utilities for palettecraft.
package security

import (
	"fmt"
	"io"
	"net/url"
	"strings"
)

// ValidateServerURL validates the base URL of a palette share server.
// Only http:// and https:// URLs with a host are accepted; plain http is
// permitted because share servers commonly run on localhost.
func ValidateServerURL(urlStr string) error {
	if urlStr == "" {
		return fmt.Errorf("empty server URL")
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("invalid server URL protocol (only http:// and https:// allowed): %s", scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("server URL must have a hostname")
	}

	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return fmt.Errorf("server URL must not contain a query or fragment")
	}

	return nil
}

// ValidateShareID checks that a share id is a non-empty URL-safe token, so it
// can be placed in a request path without escaping.
func ValidateShareID(id string) error {
	if id == "" {
		return fmt.Errorf("empty share id")
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("share id contains invalid character %q", r)
		}
	}
	return nil
}

// SafeUint8 safely converts an integer to uint8 with bounds checking.
// Values outside 0-255 are clamped to the valid range.
func SafeUint8(val int) uint8 {
	if val < 0 {
		return 0
	}
	if val > 255 {
		return 255
	}
	return uint8(val)
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Reading past the limit is an error rather than a silent truncation.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Read one more byte so a body of exactly the limit still reads cleanly.
		var extra [1]byte
		n, err := l.R.Read(extra[:])
		if n > 0 {
			return 0, fmt.Errorf("response size limit exceeded")
		}
		return 0, err
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
