package cformat_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/cformat/pkg/cformat"
	"github.com/yaklabco/cformat/pkg/style"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.cc")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestPipeline_ProcessFile_InPlaceWritesFormattedContent(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "int   a=1;\n")
	p := cformat.NewPipeline(cformat.New(style.LLVM()))

	opts := cformat.DefaultPipelineOptions()
	opts.InPlace = true

	res, err := p.ProcessFile(context.Background(), path, opts)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if !res.Written {
		t.Fatalf("expected Written, got %+v", res)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read result: %v", err)
	}
	if string(got) != "int a = 1;\n" {
		t.Errorf("got %q", got)
	}
}

func TestPipeline_ProcessFile_NotInPlaceLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "int   a=1;\n")
	p := cformat.NewPipeline(cformat.New(style.LLVM()))

	res, err := p.ProcessFile(context.Background(), path, cformat.DefaultPipelineOptions())
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if res.Written {
		t.Errorf("expected no write, got %+v", res)
	}
	if !res.Result.Changed {
		t.Errorf("expected Result.Changed to report the pending diff")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read result: %v", err)
	}
	if string(got) != "int   a=1;\n" {
		t.Errorf("file was modified: %q", got)
	}
}

func TestPipeline_ProcessFile_DryRunProducesDiff(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "int   a=1;\n")
	p := cformat.NewPipeline(cformat.New(style.LLVM()))

	opts := cformat.DefaultPipelineOptions()
	opts.DryRun = true

	res, err := p.ProcessFile(context.Background(), path, opts)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if res.Diff == nil || !res.Diff.HasChanges() {
		t.Errorf("expected a non-empty diff, got %+v", res.Diff)
	}
}

func TestPipeline_ProcessFile_AlreadyFormattedSkipsWrite(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "int a = 1;\n")
	p := cformat.NewPipeline(cformat.New(style.LLVM()))

	opts := cformat.DefaultPipelineOptions()
	opts.InPlace = true

	res, err := p.ProcessFile(context.Background(), path, opts)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if res.Written {
		t.Errorf("expected no write for already-formatted file, got %+v", res)
	}
}
