// Package style implements the Style configuration contract of spec.md §3:
// the six knobs that parameterize the annotator and layout engine, plus the
// LLVM/Google presets named in spec.md §6. Style is a plain data struct in
// the shape of the teacher's pkg/formatter.Formatter (IndentString,
// MaxLineWidth as directly-settable fields with a New()-equivalent preset
// constructor), widened from two knobs to six and serialized as JSON rather
// than built up through a rule registry.
package style

// Style holds the formatting knobs spec.md §3 names. Every field is
// consulted by either the annotator (pkg/annotate) or the layout engine
// (pkg/layout); none are advisory-only except where noted.
type Style struct {
	// ColumnLimit is the target line width the layout engine's penalty
	// function budgets against. 0 disables the column-aware penalty term.
	ColumnLimit int `json:"column_limit"`

	// MaxEmptyLinesToKeep caps how many consecutive blank source lines
	// survive between two unwrapped lines.
	MaxEmptyLinesToKeep int `json:"max_empty_lines_to_keep"`

	// PointerAndReferenceBindToType controls the pairwise SpaceBefore rule
	// for '*'/'&' tokens annotated PointerOrReference: true binds the
	// token to the type on its left ("int* p" has no space before '*'
	// read the other way — see pkg/annotate's pairwise table for the
	// exact asymmetric rule both presets rely on).
	PointerAndReferenceBindToType bool `json:"pointer_and_reference_bind_to_type"`

	// AccessModifierOffset is the indent delta applied to "public:",
	// "protected:", and "private:" labels relative to the enclosing
	// class's member indent. Advisory to pkg/uline/pkg/layout's first-token
	// placement, not consulted by the annotator.
	AccessModifierOffset int `json:"access_modifier_offset"`

	// SplitTemplateClosingGreater controls the SpaceBefore rule when two
	// adjacent TemplateCloser '>' tokens meet (">>" split by the Token
	// Source): true inserts a space ("A<B<C> >"), false does not ("A<B<C>>").
	SplitTemplateClosingGreater bool `json:"split_template_closing_greater"`

	// IndentCaseLabels is advisory only: neither pkg/uline nor pkg/layout
	// reads it, so "case"/"default" labels sit at their block's level
	// either way.
	IndentCaseLabels bool `json:"indent_case_labels"`
}

// LLVM returns the LLVM preset (spec.md §6).
func LLVM() *Style {
	return &Style{
		ColumnLimit:                   80,
		MaxEmptyLinesToKeep:           1,
		PointerAndReferenceBindToType: false,
		AccessModifierOffset:          -2,
		SplitTemplateClosingGreater:   true,
		IndentCaseLabels:              false,
	}
}

// Google returns the Google preset (spec.md §6).
func Google() *Style {
	return &Style{
		ColumnLimit:                   80,
		MaxEmptyLinesToKeep:           1,
		PointerAndReferenceBindToType: true,
		AccessModifierOffset:          -1,
		SplitTemplateClosingGreater:   false,
		IndentCaseLabels:              true,
	}
}

// Clone returns a deep copy. Style has no reference fields, so a value copy
// suffices; Clone exists so callers don't need to know that.
func (s *Style) Clone() *Style {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

// Named resolves a preset name to its Style, for the "--style=llvm|google"
// CLI flag and the config file's "base:" key.
func Named(name string) (*Style, bool) {
	switch name {
	case "llvm", "LLVM", "":
		return LLVM(), true
	case "google", "Google":
		return Google(), true
	default:
		return nil, false
	}
}
