package edit

import "bytes"

// Apply applies a Prepare-d (sorted, non-overlapping) slice of edits to
// content, returning the result.
func Apply(content []byte, edits []Edit) []byte {
	if len(edits) == 0 {
		return content
	}

	delta := 0
	for _, e := range edits {
		delta += e.Newlines + e.Spaces - e.Length
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range edits {
		out.Write(content[cursor:e.Offset])
		out.WriteString(e.Text())
		cursor = e.End()
	}
	out.Write(content[cursor:])

	return out.Bytes()
}
