package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/yaklabco/cformat/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), nil, testInfo(), &stdout, &stderr)

	if code != cli.ExitInvalidUsage {
		t.Errorf("expected exit code %d, got %d", cli.ExitInvalidUsage, code)
	}
	if !strings.Contains(stderr.String(), "cformat") {
		t.Errorf("expected usage text in stderr, got %q", stderr.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"bogus"}, testInfo(), &stdout, &stderr)

	if code != cli.ExitInvalidUsage {
		t.Errorf("expected exit code %d, got %d", cli.ExitInvalidUsage, code)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Errorf("expected unknown command message, got %q", stderr.String())
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"help"}, testInfo(), &stdout, &stderr)

	if code != cli.ExitSuccess {
		t.Errorf("expected exit code %d, got %d", cli.ExitSuccess, code)
	}
	if !strings.Contains(stdout.String(), "format") {
		t.Errorf("expected usage to mention the format command, got %q", stdout.String())
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	info := cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2024-01-01"}
	code := cli.Run(context.Background(), []string{"version"}, info, &stdout, &stderr)

	if code != cli.ExitSuccess {
		t.Errorf("expected exit code %d, got %d", cli.ExitSuccess, code)
	}
	if !strings.Contains(stdout.String(), "1.2.3") {
		t.Errorf("expected version in output, got %q", stdout.String())
	}
}

func TestRun_FormatRejectsUnknownFlag(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"format", "--not-a-real-flag"}, testInfo(), &stdout, &stderr)

	if code != cli.ExitInvalidUsage {
		t.Errorf("expected exit code %d, got %d", cli.ExitInvalidUsage, code)
	}
}

func TestRun_CheckRejectsInPlaceFlag(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), []string{"check", "--in-place"}, testInfo(), &stdout, &stderr)

	if code != cli.ExitInvalidUsage {
		t.Errorf("check should not accept --in-place, got exit code %d", code)
	}
}
