// Package shared provides common utility functions used across multiple
// packages in the obs-pkgver codebase.
package shared

import (
	"fmt"
	"strings"
)

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// HTTPStatusErrorWithBody creates a formatted error that includes the
// response body for non-2xx HTTP responses. Long bodies are truncated.
func HTTPStatusErrorWithBody(status int, url string, body string) error {
	if strings.TrimSpace(body) == "" {
		return HTTPStatusError(status, url)
	}
	return fmt.Errorf("status=%d url=%s response=%s", status, url, truncate(body, maxErrorBody))
}

const maxErrorBody = 512

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
