// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"
)

// NotBlank rejects strings that are empty after trimming whitespace.
func NotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

// Title validates a task title entered through an interactive form.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.ContainsAny(title, "\r\n") {
		return fmt.Errorf("title must be a single line")
	}
	return nil
}
