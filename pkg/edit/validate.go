package edit

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit with an out-of-range or inverted offset.
type ValidationError struct {
	Edit    Edit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Offset, e.Edit.End(), e.Message)
}

// ConflictError describes two edits whose ranges overlap.
type ConflictError struct {
	Edit1, Edit2 Edit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.Offset, e.Edit1.End(), e.Edit2.Offset, e.Edit2.End())
}

// Validate checks that every edit's range falls within [0, contentLen].
func Validate(edits []Edit, contentLen int) error {
	for _, e := range edits {
		if e.Offset < 0 {
			return &ValidationError{Edit: e, Message: "offset is negative"}
		}
		if e.Length < 0 {
			return &ValidationError{Edit: e, Message: "length is negative"}
		}
		if e.End() > contentLen {
			return &ValidationError{Edit: e, Message: fmt.Sprintf("end offset %d exceeds content length %d", e.End(), contentLen)}
		}
	}
	return nil
}

// Sort orders edits by offset, then by length, giving the deterministic
// application order spec.md §5 requires regardless of production order.
func Sort(edits []Edit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].Offset != edits[j].Offset {
			return edits[i].Offset < edits[j].Offset
		}
		return edits[i].Length < edits[j].Length
	})
}

// DetectConflicts reports the first pair of overlapping ranges in a
// Sort-ed slice. Per spec.md §5's "edit keys (source ranges) are disjoint
// by construction", a well-formed Formatter run never triggers this; it
// exists to catch a driver bug rather than to handle a legitimate case.
func DetectConflicts(edits []Edit) error {
	for i := 1; i < len(edits); i++ {
		prev, curr := edits[i-1], edits[i]
		if curr.Offset < prev.End() {
			return &ConflictError{Edit1: prev, Edit2: curr}
		}
	}
	return nil
}

// Prepare validates, sorts, and conflict-checks edits in one call.
func Prepare(edits []Edit, contentLen int) ([]Edit, error) {
	if len(edits) == 0 {
		return edits, nil
	}
	if err := Validate(edits, contentLen); err != nil {
		return nil, err
	}
	result := make([]Edit, len(edits))
	copy(result, edits)
	Sort(result)
	if err := DetectConflicts(result); err != nil {
		return nil, err
	}
	return result, nil
}
