package splitter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pyhub-apps/pdfsplit-golang/pkg/pdf"
)

func fixtureWithChapters(t *testing.T) *pdf.FixtureDocument {
	t.Helper()
	return pdf.NewFixtureDocument(15, []pdf.OutlineEntry{
		{Level: 1, Title: "Intro", Page: 3},
		{Level: 1, Title: "Body", Page: 10},
	})
}

func TestExportWritesAllPlans(t *testing.T) {
	doc := fixtureWithChapters(t)
	defer doc.Close()
	outDir := t.TempDir()

	plans := Analyze(doc)
	paths, err := Export(doc, plans, outDir, nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if len(paths) != len(plans) {
		t.Fatalf("Expected %d paths, got %d", len(plans), len(paths))
	}
	for i, p := range paths {
		want := filepath.Join(outDir, plans[i].Name+".pdf")
		if p != want {
			t.Errorf("Path %d: got %q, want %q", i, p, want)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Output file missing: %v", err)
		}
	}

	// The exported ranges must cover the source document exactly.
	totalPages := 0
	for _, r := range doc.Exported {
		totalPages += r.EndPage - r.StartPage + 1
	}
	if totalPages != doc.PageCount() {
		t.Errorf("Exported %d pages total, want %d", totalPages, doc.PageCount())
	}
}

func TestExportCreatesOutputDirectory(t *testing.T) {
	doc := fixtureWithChapters(t)
	defer doc.Close()
	outDir := filepath.Join(t.TempDir(), "nested", "chapters")

	if _, err := Export(doc, Analyze(doc), outDir, nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	info, err := os.Stat(outDir)
	if err != nil || !info.IsDir() {
		t.Errorf("Output directory was not created: %v", err)
	}
}

func TestExportProgressSequence(t *testing.T) {
	doc := fixtureWithChapters(t)
	defer doc.Close()

	var fractions []float64
	var messages []string
	progress := func(p float64, msg string) {
		fractions = append(fractions, p)
		messages = append(messages, msg)
	}

	plans := Analyze(doc)
	if _, err := Export(doc, plans, t.TempDir(), progress); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// One call per plan plus the final completion call.
	if len(fractions) != len(plans)+1 {
		t.Fatalf("Expected %d progress calls, got %d", len(plans)+1, len(fractions))
	}
	for i := 1; i < len(fractions); i++ {
		if fractions[i] < fractions[i-1] {
			t.Errorf("Progress regressed: %v", fractions)
		}
	}
	if fractions[0] != 0.0 {
		t.Errorf("First progress value should be 0, got %v", fractions[0])
	}
	if last := fractions[len(fractions)-1]; last != 1.0 {
		t.Errorf("Final progress value should be 1.0, got %v", last)
	}

	if messages[0] != "processing: leading section" {
		t.Errorf("Unexpected first message: %q", messages[0])
	}
	if want := fmt.Sprintf("done: %d files", len(plans)); messages[len(messages)-1] != want {
		t.Errorf("Final message %q, want %q", messages[len(messages)-1], want)
	}
}

func TestExportEmptyPlanSet(t *testing.T) {
	doc := fixtureWithChapters(t)
	defer doc.Close()

	_, err := Export(doc, nil, t.TempDir(), nil)
	if !errors.Is(err, ErrEmptyPlanSet) {
		t.Errorf("Expected ErrEmptyPlanSet, got %v", err)
	}
}

func TestExportRejectsDegenerateRangeBeforeWriting(t *testing.T) {
	doc := fixtureWithChapters(t)
	defer doc.Close()
	outDir := t.TempDir()

	plans := []SplitPlan{
		{Name: "01_ok", StartPage: 0, EndPage: 5, Title: "ok", Level: 1},
		{Name: "02_bad", StartPage: 9, EndPage: 3, Title: "bad", Level: 1},
	}

	_, err := Export(doc, plans, outDir, nil)
	if !errors.Is(err, ErrDegenerateRange) {
		t.Fatalf("Expected ErrDegenerateRange, got %v", err)
	}

	// Validation happens up front: nothing may be written, not even the valid
	// plan that precedes the degenerate one.
	entries, readErr := os.ReadDir(outDir)
	if readErr != nil {
		t.Fatalf("ReadDir failed: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no output files, found %d", len(entries))
	}
}

func TestExportWriteFailureKeepsEarlierFiles(t *testing.T) {
	doc := fixtureWithChapters(t)
	defer doc.Close()
	doc.FailExportAt = 1
	outDir := t.TempDir()

	plans := Analyze(doc)
	paths, err := Export(doc, plans, outDir, nil)
	if err == nil {
		t.Fatal("Expected write error")
	}

	// No rollback: the first file stays on disk and is reported back.
	if len(paths) != 1 {
		t.Fatalf("Expected 1 written path, got %d", len(paths))
	}
	if _, statErr := os.Stat(paths[0]); statErr != nil {
		t.Errorf("First output file should remain: %v", statErr)
	}
}

func TestExportPanickingCallbackDoesNotAbort(t *testing.T) {
	doc := fixtureWithChapters(t)
	defer doc.Close()

	progress := func(p float64, msg string) {
		panic("defective callback")
	}

	plans := Analyze(doc)
	paths, err := Export(doc, plans, t.TempDir(), progress)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(paths) != len(plans) {
		t.Errorf("Expected %d files despite panicking callback, got %d", len(plans), len(paths))
	}
}

func TestExportOverwritesExistingFiles(t *testing.T) {
	doc := fixtureWithChapters(t)
	defer doc.Close()
	outDir := t.TempDir()

	plans := Analyze(doc)
	stale := filepath.Join(outDir, plans[0].Name+".pdf")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Export(doc, plans, outDir, nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "stale" {
		t.Error("Existing file was not overwritten")
	}
}

func TestExportRequiresRangeExporter(t *testing.T) {
	doc := readOnlyDoc{pages: 10}
	_, err := Export(doc, Analyze(doc), t.TempDir(), nil)
	if !errors.Is(err, pdf.ErrNotExportable) {
		t.Errorf("Expected ErrNotExportable, got %v", err)
	}
}

// readOnlyDoc implements pdf.Document but not pdf.RangeExporter.
type readOnlyDoc struct {
	pages int
}

func (d readOnlyDoc) GetMetadata() pdf.Metadata   { return pdf.Metadata{} }
func (d readOnlyDoc) PageCount() int              { return d.pages }
func (d readOnlyDoc) Outline() []pdf.OutlineEntry { return nil }
func (d readOnlyDoc) Close() error                { return nil }
