// Package pretty provides ANSI-escape-based styled output utilities for
// cformat's CLI reports.
package pretty

import (
	"io"
	"os"
	"strings"
)

// ANSI escape codes for terminal styling, in the style of a raw
// color-constant table rather than a styling library.
const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[38;5;245m"

	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"

	ansiBoldRed   = "\x1b[1;31m"
	ansiBoldGreen = "\x1b[1;32m"
)

// Style wraps a string in an ANSI escape sequence when enabled, and passes
// it through unchanged otherwise.
type Style struct {
	code    string
	enabled bool
}

// Render applies the style's escape code to text, or returns text
// unchanged if the style is disabled.
func (s Style) Render(text string) string {
	if !s.enabled || s.code == "" {
		return text
	}
	return s.code + text + ansiReset
}

func newStyle(code string, enabled bool) Style {
	return Style{code: code, enabled: enabled}
}

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// File status styles
	FilePath Style
	Error    Style

	// Diff styles
	DiffHeader  Style
	DiffHunk    Style
	DiffAdd     Style
	DiffRemove  Style
	DiffContext Style

	// Summary styles
	SummaryTitle Style
	SummaryValue Style
	Success      Style
	Failure      Style

	// Misc
	Dim  Style
	Bold Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	return &Styles{
		FilePath: newStyle(ansiBold, colorEnabled),
		Error:    newStyle(ansiBoldRed, colorEnabled),

		DiffHeader:  newStyle(ansiBold, colorEnabled),
		DiffHunk:    newStyle(ansiCyan, colorEnabled),
		DiffAdd:     newStyle(ansiGreen, colorEnabled),
		DiffRemove:  newStyle(ansiRed, colorEnabled),
		DiffContext: newStyle(ansiDim, colorEnabled),

		SummaryTitle: newStyle(ansiBold, colorEnabled),
		SummaryValue: newStyle("", colorEnabled),
		Success:      newStyle(ansiBoldGreen, colorEnabled),
		Failure:      newStyle(ansiBoldRed, colorEnabled),

		Dim:  newStyle(ansiDim, colorEnabled),
		Bold: newStyle(ansiBold, colorEnabled),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled unless NO_COLOR is set, TERM is "dumb", or the writer
// is not a file (e.g. a buffer captured for tests or piped output).
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if strings.ToLower(os.Getenv("TERM")) == "dumb" {
			return false
		}
		_, isFile := writer.(*os.File)
		return isFile
	}
}
