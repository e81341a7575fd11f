package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFixtureDocumentExportRange(t *testing.T) {
	doc := NewFixtureDocument(10, nil)
	outPath := filepath.Join(t.TempDir(), "part.pdf")

	if err := doc.ExportRange(2, 5, outPath); err != nil {
		t.Fatalf("ExportRange failed: %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("Output file missing: %v", err)
	}
	if len(doc.Exported) != 1 || doc.Exported[0].StartPage != 2 || doc.Exported[0].EndPage != 5 {
		t.Errorf("Unexpected export record: %+v", doc.Exported)
	}
}

func TestFixtureDocumentRejectsBadRanges(t *testing.T) {
	doc := NewFixtureDocument(10, nil)
	outPath := filepath.Join(t.TempDir(), "part.pdf")

	cases := []struct{ start, end int }{
		{-1, 3},  // negative start
		{5, 4},   // start after end
		{8, 10},  // end beyond last page
	}
	for _, tc := range cases {
		if err := doc.ExportRange(tc.start, tc.end, outPath); err == nil {
			t.Errorf("Expected error for range [%d, %d]", tc.start, tc.end)
		}
	}
}

func TestClosedHandleFailsDeterministically(t *testing.T) {
	doc := NewFixtureDocument(10, []OutlineEntry{{Level: 1, Title: "A", Page: 1}})
	if err := doc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if got := doc.PageCount(); got != 0 {
		t.Errorf("PageCount on closed handle: got %d, want 0", got)
	}
	if got := doc.Outline(); got != nil {
		t.Errorf("Outline on closed handle: got %v, want nil", got)
	}
	if err := doc.ExportRange(0, 1, filepath.Join(t.TempDir(), "x.pdf")); !errors.Is(err, ErrClosed) {
		t.Errorf("ExportRange on closed handle: got %v, want ErrClosed", err)
	}
	if err := doc.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("Double close: got %v, want ErrClosed", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.pdf"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Expected load error for non-PDF bytes")
	}
}
