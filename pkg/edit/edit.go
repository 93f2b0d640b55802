// Package edit implements a whitespace-only text edit model: each edit
// replaces a byte range with exactly `'\n'×N` followed by `' '×S`. It
// narrows the Range/NewText shape of pkg/lsp/provider's TextEdit down to
// the (Newlines, Spaces) pair the layout engine actually produces, and
// adds a FileID so pkg/runner can collect edits from many files into one
// report without losing track of which file they belong to.
package edit

// Edit is one whitespace replacement: bytes [Offset, Offset+Length) in the
// file identified by FileID are replaced by Newlines newline characters
// followed by Spaces space characters.
type Edit struct {
	FileID   string
	Offset   int
	Length   int
	Newlines int
	Spaces   int
}

// Text renders the edit's replacement bytes.
func (e Edit) Text() string {
	buf := make([]byte, e.Newlines+e.Spaces)
	for i := 0; i < e.Newlines; i++ {
		buf[i] = '\n'
	}
	for i := e.Newlines; i < len(buf); i++ {
		buf[i] = ' '
	}
	return string(buf)
}

// End returns the exclusive end offset of the replaced range.
func (e Edit) End() int {
	return e.Offset + e.Length
}

// Builder accumulates edits for one Formatter call, in the order the driver
// visits tokens (spec.md §5: "edits are produced in the order tokens are
// visited... the application layer must not rely on any particular global
// order").
type Builder struct {
	fileID string
	edits  []Edit
}

// NewBuilder returns an empty Builder that stamps fileID onto every edit it
// accumulates. fileID may be empty for single-file/test callers that don't
// need to distinguish files.
func NewBuilder(fileID string) *Builder {
	return &Builder{fileID: fileID}
}

// Replace appends one whitespace edit at [offset, offset+length).
func (b *Builder) Replace(offset, length, newlines, spaces int) {
	b.edits = append(b.edits, Edit{
		FileID:   b.fileID,
		Offset:   offset,
		Length:   length,
		Newlines: newlines,
		Spaces:   spaces,
	})
}

// Edits returns the accumulated edits, in insertion order.
func (b *Builder) Edits() []Edit {
	return b.edits
}
