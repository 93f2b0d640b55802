package configloader

import "github.com/yaklabco/cformat/pkg/style"

// MergeAll merges multiple styles in order, with later styles taking
// precedence over earlier ones. The first style is used as the base; a nil
// entry is skipped. Returns nil if styles is empty.
func MergeAll(styles ...*style.Style) *style.Style {
	var result *style.Style
	for _, s := range styles {
		if s == nil {
			continue
		}
		if result == nil {
			result = s.Clone()
			continue
		}
		result = result.Merge(s)
	}
	return result
}
