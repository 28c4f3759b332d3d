// Package storage owns file access for the todo file. The core packages
// never touch the filesystem directly; they receive full file content and
// hand updated content back.
package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

const filePerms = 0o600

// ReadAll returns the full content of the todo file.
// A missing file reads as empty content: the first invocation has no
// todo.txt yet and every command must still work.
func ReadAll(path string) (string, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own flag
	if os.IsNotExist(err) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("reading todo file: %w", err)
	}

	return string(content), nil
}

// WriteAll replaces the todo file content via an atomic rename, so an
// interrupted command never leaves a partially written file.
func WriteAll(path, content string) error {
	writeErr := atomic.WriteFile(path, strings.NewReader(content))
	if writeErr != nil {
		return fmt.Errorf("writing todo file: %w", writeErr)
	}

	// atomic.WriteFile doesn't set permissions for new files
	chmodErr := os.Chmod(path, filePerms)
	if chmodErr != nil {
		return fmt.Errorf("setting todo file permissions: %w", chmodErr)
	}

	return nil
}
