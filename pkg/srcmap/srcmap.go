// Package srcmap provides character-data access by location, file-offset
// queries, spelling-column queries, and a strict total order on locations,
// in the shape of pkg/lsp's PositionToOffset/OffsetToPosition pair, widened
// from a line/character scan into a precomputed line table for repeated
// lookups.
package srcmap

import "sort"

// LineInfo records the byte extent of one physical line, including its
// line terminator.
type LineInfo struct {
	// StartOffset is the byte offset of the line's first byte.
	StartOffset int

	// NewlineStart is the byte offset where the line terminator begins
	// (equal to EndOffset for a line with no terminator, e.g. EOF).
	NewlineStart int

	// EndOffset is the byte offset one past the line terminator.
	EndOffset int
}

// File is a source buffer plus its line table.
type File struct {
	Content []byte
	Lines   []LineInfo
}

// New builds a File and its line table from content.
func New(content []byte) *File {
	return &File{Content: content, Lines: buildLines(content)}
}

func buildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{{}}
	}

	var lines []LineInfo
	lineStart := 0

	for i, ch := range content {
		if ch != '\n' {
			continue
		}
		newlineStart := i
		if i > 0 && content[i-1] == '\r' {
			newlineStart = i - 1
		}
		lines = append(lines, LineInfo{StartOffset: lineStart, NewlineStart: newlineStart, EndOffset: i + 1})
		lineStart = i + 1
	}

	if lineStart <= len(content) {
		lines = append(lines, LineInfo{StartOffset: lineStart, NewlineStart: len(content), EndOffset: len(content)})
	}

	return lines
}

// LineAt converts a byte offset to a 1-based (line, column) pair. Column
// counts bytes, matching spec.md §9 Open Question (b)'s
// "SpellingColumnNumber - 1" convention (columns are 1-based).
func (f *File) LineAt(offset int) (line, column int) {
	if offset < 0 || len(f.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(f.Content) {
		last := f.Lines[len(f.Lines)-1]
		return len(f.Lines), offset - last.StartOffset + 1
	}

	idx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	if idx >= len(f.Lines) {
		idx = len(f.Lines) - 1
	}

	li := f.Lines[idx]
	if offset < li.StartOffset {
		return 0, 0
	}
	return idx + 1, offset - li.StartOffset + 1
}

// CharData returns the raw bytes in [start, end).
func (f *File) CharData(start, end int) []byte {
	if start < 0 || end > len(f.Content) || start > end {
		return nil
	}
	return f.Content[start:end]
}

// IsBeforeInTranslationUnit is the strict total order on byte offsets that
// spec.md §6 requires of the SourceManager collaborator: within one file,
// offset order is source order.
func IsBeforeInTranslationUnit(a, b int) bool {
	return a < b
}
