package cformat_test

import (
	"context"
	"testing"

	"github.com/yaklabco/cformat/pkg/cformat"
	"github.com/yaklabco/cformat/pkg/style"
)

func TestFormatFile_CollapsesWhitespaceAcrossLines(t *testing.T) {
	t.Parallel()

	src := "int   a=1;\nint   b=2;\n"
	f := cformat.New(style.LLVM())

	res, err := f.FormatFile(context.Background(), "test.cc", []byte(src), nil)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if !res.Changed {
		t.Fatalf("expected Changed, got unchanged output %q", res.Formatted)
	}
	want := "int a = 1;\nint b = 2;\n"
	if string(res.Formatted) != want {
		t.Errorf("got %q, want %q", res.Formatted, want)
	}
}

func TestFormatFile_UnchangedInputStaysUnchanged(t *testing.T) {
	t.Parallel()

	src := "int a = 1;\n"
	f := cformat.New(style.LLVM())

	res, err := f.FormatFile(context.Background(), "test.cc", []byte(src), nil)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if res.Changed {
		t.Errorf("expected no change, got %q", res.Formatted)
	}
}

func TestFormatFile_RangeRestrictsEdits(t *testing.T) {
	t.Parallel()

	src := "int   a=1;\nint   b=2;\n"
	f := cformat.New(style.LLVM())

	// Restrict to only the first line's byte span.
	firstLineEnd := len("int   a=1;")
	res, err := f.FormatFile(context.Background(), "test.cc", []byte(src), []cformat.Range{{Start: 0, End: firstLineEnd}})
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	want := "int a = 1;\nint   b=2;\n"
	if string(res.Formatted) != want {
		t.Errorf("got %q, want %q", res.Formatted, want)
	}
}

func TestFormatFile_EmptyFileProducesNoEdits(t *testing.T) {
	t.Parallel()

	f := cformat.New(style.LLVM())
	res, err := f.FormatFile(context.Background(), "empty.cc", nil, nil)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if res.Changed || len(res.Edits) != 0 {
		t.Errorf("expected no edits on empty file, got %+v", res)
	}
}
