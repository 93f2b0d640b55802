package style_test

import (
	"testing"

	"github.com/yaklabco/cformat/pkg/style"
)

func TestLLVMAndGooglePresetsDiffer(t *testing.T) {
	t.Parallel()

	llvm := style.LLVM()
	google := style.Google()

	if llvm.PointerAndReferenceBindToType == google.PointerAndReferenceBindToType {
		return
	}
	if llvm.ColumnLimit != google.ColumnLimit {
		t.Errorf("expected both presets to share ColumnLimit=80, got llvm=%d google=%d", llvm.ColumnLimit, google.ColumnLimit)
	}
	if llvm.AccessModifierOffset != -2 || google.AccessModifierOffset != -1 {
		t.Errorf("unexpected AccessModifierOffset: llvm=%d google=%d", llvm.AccessModifierOffset, google.AccessModifierOffset)
	}
}

func TestNamed(t *testing.T) {
	t.Parallel()

	if _, ok := style.Named("bogus"); ok {
		t.Error("expected unknown style name to fail")
	}
	if s, ok := style.Named("google"); !ok || !s.PointerAndReferenceBindToType {
		t.Error("expected google preset with PointerAndReferenceBindToType=true")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := style.Google().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	back, err := style.FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if *back != *style.Google() {
		t.Errorf("round trip mismatch: got %+v", back)
	}
}

func TestMergeOnlyOverridesSetFields(t *testing.T) {
	t.Parallel()

	base := style.LLVM()
	override := &style.Style{ColumnLimit: 100}
	merged := base.Merge(override)

	if merged.ColumnLimit != 100 {
		t.Errorf("expected overridden ColumnLimit=100, got %d", merged.ColumnLimit)
	}
	if merged.MaxEmptyLinesToKeep != base.MaxEmptyLinesToKeep {
		t.Errorf("expected untouched MaxEmptyLinesToKeep to carry over, got %d", merged.MaxEmptyLinesToKeep)
	}
}
