package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/cformat/internal/cli"
)

// unformattedSource has inconsistent spacing that the LLVM style would rewrite.
const unformattedSource = "int main(  ) {\nint   x=1;\nreturn x;\n}\n"

func TestIntegration_FormatDiff(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "test.c")
	if err := os.WriteFile(srcFile, []byte(unformattedSource), 0644); err != nil {
		t.Fatalf("write source file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"format", "--diff", "--color", "never", srcFile}, testInfo(), &stdout, &stderr)

	if code != cli.ExitSuccess && code != cli.ExitWouldReformat {
		t.Fatalf("unexpected exit code %d, stderr=%q", code, stderr.String())
	}

	output := stdout.String() + stderr.String()
	if !strings.Contains(output, "test.c") {
		t.Errorf("expected output to mention test.c, got %q", output)
	}
}

func TestIntegration_FormatInPlaceRewritesFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "test.c")
	if err := os.WriteFile(srcFile, []byte(unformattedSource), 0644); err != nil {
		t.Fatalf("write source file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"format", "-i", "--no-backups", "--color", "never", srcFile}, testInfo(), &stdout, &stderr)
	if code != cli.ExitSuccess {
		t.Fatalf("format -i failed, exit code %d, stderr=%q", code, stderr.String())
	}

	rewritten, err := os.ReadFile(srcFile)
	if err != nil {
		t.Fatalf("read rewritten file: %v", err)
	}
	if string(rewritten) == unformattedSource {
		t.Error("expected file contents to change after formatting in place")
	}
}

func TestIntegration_CheckFailsOnUnformattedFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "test.c")
	if err := os.WriteFile(srcFile, []byte(unformattedSource), 0644); err != nil {
		t.Fatalf("write source file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"check", "--color", "never", srcFile}, testInfo(), &stdout, &stderr)

	if code != cli.ExitWouldReformat {
		t.Errorf("expected exit code %d for unformatted file, got %d", cli.ExitWouldReformat, code)
	}

	contents, err := os.ReadFile(srcFile)
	if err != nil {
		t.Fatalf("read source file: %v", err)
	}
	if string(contents) != unformattedSource {
		t.Error("check must never write to disk")
	}
}

func TestIntegration_CheckPassesOnAlreadyFormattedFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "test.c")
	if err := os.WriteFile(srcFile, []byte("int x = 1;\n"), 0644); err != nil {
		t.Fatalf("write source file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"check", "--color", "never", srcFile}, testInfo(), &stdout, &stderr)

	if code != cli.ExitSuccess {
		t.Errorf("expected exit code %d for already-formatted file, got %d, stderr=%q", cli.ExitSuccess, code, stderr.String())
	}
}

func TestIntegration_FormatStylePreset(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "test.c")
	if err := os.WriteFile(srcFile, []byte("int* p;\n"), 0644); err != nil {
		t.Fatalf("write source file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"format", "--style", "google", "--report", "json", "--color", "never", srcFile}, testInfo(), &stdout, &stderr)

	if code != cli.ExitSuccess {
		t.Fatalf("format with google style failed, exit code %d, stderr=%q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"path"`) {
		t.Errorf("expected JSON report to contain \"path\", got %q", stdout.String())
	}
}

func TestIntegration_FormatSummaryReport(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	srcFile := filepath.Join(tmpDir, "test.c")
	if err := os.WriteFile(srcFile, []byte(unformattedSource), 0644); err != nil {
		t.Fatalf("write source file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"format", "--report", "summary", "--color", "never", srcFile}, testInfo(), &stdout, &stderr)

	if code != cli.ExitSuccess {
		t.Fatalf("format with summary report failed, exit code %d, stderr=%q", code, stderr.String())
	}
	output := stdout.String() + stderr.String()
	if !strings.Contains(output, "Summary") {
		t.Errorf("expected summary output to contain \"Summary\", got %q", output)
	}
}

func TestIntegration_InitCreatesStyleFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, ".cformat.json")

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"init", "--output", outputPath}, testInfo(), &stdout, &stderr)

	if code != cli.ExitSuccess {
		t.Fatalf("init failed, exit code %d, stderr=%q", code, stderr.String())
	}

	contents, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read created style file: %v", err)
	}
	if !strings.Contains(string(contents), "column_limit") {
		t.Errorf("expected style file to contain column_limit, got %q", string(contents))
	}
}
