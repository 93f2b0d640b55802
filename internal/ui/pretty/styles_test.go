package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/yaklabco/cformat/internal/ui/pretty"
)

func TestNewStyles_ColorEnabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(true)
	if styles == nil {
		t.Fatal("NewStyles returned nil")
	}
}

func TestNewStyles_ColorDisabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	text := "test"
	if got := styles.Bold.Render(text); got != text {
		t.Errorf("no-color Bold should not add formatting, got %q", got)
	}
	if got := styles.Error.Render(text); got != text {
		t.Errorf("no-color Error should not add formatting, got %q", got)
	}
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if !pretty.IsColorEnabled("always", &buf) {
		t.Error("always mode should return true")
	}
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	t.Parallel()

	if pretty.IsColorEnabled("never", os.Stdout) {
		t.Error("never mode should return false")
	}
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	t.Parallel()

	// bytes.Buffer is not a file.
	var buf bytes.Buffer
	if pretty.IsColorEnabled("auto", &buf) {
		t.Error("auto mode with a non-file writer should return false")
	}
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if pretty.IsColorEnabled("auto", os.Stdout) {
		t.Error("auto mode with NO_COLOR set should return false")
	}
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	if pretty.IsColorEnabled("", &buf) {
		t.Error("empty mode with non-file writer should return false (auto behavior)")
	}

	if pretty.IsColorEnabled("unknown", &buf) {
		t.Error("unknown mode with non-file writer should return false (auto behavior)")
	}
}

func TestStyles_AllFieldsRender(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(true)

	fields := []pretty.Style{
		styles.FilePath, styles.Error,
		styles.DiffHeader, styles.DiffHunk, styles.DiffAdd, styles.DiffRemove, styles.DiffContext,
		styles.SummaryTitle, styles.SummaryValue, styles.Success, styles.Failure,
		styles.Dim, styles.Bold,
	}
	for _, f := range fields {
		if f.Render("x") == "" {
			t.Error("expected non-empty rendered output")
		}
	}
}
