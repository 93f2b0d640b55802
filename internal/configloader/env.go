package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/cformat/pkg/style"
)

// envVarPrefix is the prefix for all cformat environment variables.
const envVarPrefix = "CFORMAT_"

// envFieldType represents the type of a style field.
type envFieldType int

const (
	envTypeBool envFieldType = iota
	envTypeInt
)

// envMapping defines environment variable to style field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to style fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"COLUMN_LIMIT":                        {field: "column_limit", typ: envTypeInt},
	"MAX_EMPTY_LINES_TO_KEEP":              {field: "max_empty_lines_to_keep", typ: envTypeInt},
	"POINTER_AND_REFERENCE_BIND_TO_TYPE":   {field: "pointer_and_reference_bind_to_type", typ: envTypeBool},
	"ACCESS_MODIFIER_OFFSET":               {field: "access_modifier_offset", typ: envTypeInt},
	"SPLIT_TEMPLATE_CLOSING_GREATER":       {field: "split_template_closing_greater", typ: envTypeBool},
	"INDENT_CASE_LABELS":                   {field: "indent_case_labels", typ: envTypeBool},
}

// LoadFromEnv applies CFORMAT_* environment variable overrides to a style,
// returning a new Style with the overrides layered on top.
func LoadFromEnv(s *style.Style) (*style.Style, error) {
	if s == nil {
		return nil, nil
	}

	override := s.Clone()
	any := false

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		any = true
		if err := applyEnvValue(override, mapping, value, envVar); err != nil {
			return nil, err
		}
	}

	if !any {
		return s.Clone(), nil
	}
	return override, nil
}

// applyEnvValue applies a single environment variable value to the override style.
func applyEnvValue(s *style.Style, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(s, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(s, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setBoolField(s *style.Style, field string, value bool) error {
	switch field {
	case "pointer_and_reference_bind_to_type":
		s.PointerAndReferenceBindToType = value
	case "split_template_closing_greater":
		s.SplitTemplateClosingGreater = value
	case "indent_case_labels":
		s.IndentCaseLabels = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(s *style.Style, field string, value int) error {
	switch field {
	case "column_limit":
		s.ColumnLimit = value
	case "max_empty_lines_to_keep":
		s.MaxEmptyLinesToKeep = value
	case "access_modifier_offset":
		s.AccessModifierOffset = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a style field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"CFORMAT_COLUMN_LIMIT":                      "Target column width (0 disables the column penalty)",
		"CFORMAT_MAX_EMPTY_LINES_TO_KEEP":            "Maximum consecutive blank lines to preserve",
		"CFORMAT_POINTER_AND_REFERENCE_BIND_TO_TYPE": "Bind '*'/'&' to the type instead of the name: true or false",
		"CFORMAT_ACCESS_MODIFIER_OFFSET":             "Indent delta for public:/protected:/private: labels",
		"CFORMAT_SPLIT_TEMPLATE_CLOSING_GREATER":     "Insert a space between adjacent template closers: true or false",
		"CFORMAT_INDENT_CASE_LABELS":                 "Indent case/default labels one level: true or false",
	}
}
