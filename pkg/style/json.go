package style

import "encoding/json"

// ToJSON serializes the Style to indented JSON, matching the
// json.MarshalIndent convention the rest of the pack uses for structured
// config and session data (see e.g. Keyhole's jsonutil package).
func (s *Style) ToJSON() ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.MarshalIndent(s, "", "  ")
}

// FromJSON parses a Style from JSON bytes, starting from the LLVM preset so
// a partial document only overrides the fields it names.
func FromJSON(data []byte) (*Style, error) {
	s := LLVM()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Merge applies override on top of s, returning a new Style. The integer
// fields are taken from override only when non-zero; the three bool fields
// are always taken from override, whether or not it set them. Used by
// internal/configloader to layer a project .cformat.json over a preset.
func (s *Style) Merge(override *Style) *Style {
	if override == nil {
		return s.Clone()
	}
	merged := *s
	if override.ColumnLimit != 0 {
		merged.ColumnLimit = override.ColumnLimit
	}
	if override.MaxEmptyLinesToKeep != 0 {
		merged.MaxEmptyLinesToKeep = override.MaxEmptyLinesToKeep
	}
	merged.PointerAndReferenceBindToType = override.PointerAndReferenceBindToType
	if override.AccessModifierOffset != 0 {
		merged.AccessModifierOffset = override.AccessModifierOffset
	}
	merged.SplitTemplateClosingGreater = override.SplitTemplateClosingGreater
	merged.IndentCaseLabels = override.IndentCaseLabels
	return &merged
}
