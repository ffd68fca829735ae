package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ValidateTargetPath validates a path handed to the materializer
func ValidateTargetPath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains a NUL byte: %q", path)
	}
	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ParseFileMode parses an octal permission string such as "0644" or "755"
func ParseFileMode(mode string) (os.FileMode, error) {
	if err := ValidateNotEmpty(mode); err != nil {
		return 0, fmt.Errorf("invalid file mode: %w", err)
	}

	m, err := strconv.ParseUint(strings.TrimSpace(mode), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode (must be octal): %s", mode)
	}

	if m > 0777 {
		return 0, fmt.Errorf("file mode must be between 0000 and 0777, got: %s", mode)
	}

	return os.FileMode(m), nil
}

// ValidateFileMode validates an octal permission string
func ValidateFileMode(mode string) error {
	_, err := ParseFileMode(mode)
	return err
}
