package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cformat/pkg/style"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "column_limit").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a style for errors and warnings.
func Validate(s *style.Style) *ValidationResult {
	if s == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if s.ColumnLimit < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "column_limit",
			Value:   s.ColumnLimit,
			Message: "column_limit must be >= 0 (0 disables the column penalty)",
		})
	}

	if s.MaxEmptyLinesToKeep < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "max_empty_lines_to_keep",
			Value:   s.MaxEmptyLinesToKeep,
			Message: "max_empty_lines_to_keep must be >= 0",
		})
	}

	if s.ColumnLimit > 0 && s.ColumnLimit < 20 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "column_limit",
			Value:   s.ColumnLimit,
			Message: fmt.Sprintf("column_limit %d is unusually narrow", s.ColumnLimit),
		})
	}

	return result
}

// ValidateWithFile validates a style and includes the file path in errors.
func ValidateWithFile(s *style.Style, filePath string) *ValidationResult {
	result := Validate(s)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
