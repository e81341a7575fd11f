package pdf

import (
	"errors"
	"testing"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

func TestFlattenBookmarks(t *testing.T) {
	// Nested bookmark trees flatten depth-first with levels counted from 1.
	bms := []pdfcpu.Bookmark{
		{
			Title:    "Chapter One",
			PageFrom: 1,
			Kids: []pdfcpu.Bookmark{
				{Title: "Section 1.1", PageFrom: 3},
				{
					Title:    "Section 1.2",
					PageFrom: 5,
					Kids: []pdfcpu.Bookmark{
						{Title: "Deep", PageFrom: 6},
					},
				},
			},
		},
		{Title: "Chapter Two", PageFrom: 10},
	}

	got := flattenBookmarks(bms, 1, nil)

	want := []OutlineEntry{
		{Level: 1, Title: "Chapter One", Page: 1},
		{Level: 2, Title: "Section 1.1", Page: 3},
		{Level: 2, Title: "Section 1.2", Page: 5},
		{Level: 3, Title: "Deep", Page: 6},
		{Level: 1, Title: "Chapter Two", Page: 10},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFlattenBookmarksEmpty(t *testing.T) {
	if got := flattenBookmarks(nil, 1, nil); got != nil {
		t.Errorf("Expected nil for empty bookmark tree, got %+v", got)
	}
}

func TestOpenWithPasswordMissingFile(t *testing.T) {
	_, err := OpenWithPassword("/nonexistent/locked.pdf", "secret")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFixtureMetadata(t *testing.T) {
	doc := NewFixtureDocument(5, nil)
	doc.SetMetadata(Metadata{Title: "Sample Book", Author: "A. Writer"})

	meta := doc.GetMetadata()
	if meta.Title != "Sample Book" || meta.Author != "A. Writer" {
		t.Errorf("Metadata round trip failed: %+v", meta)
	}
}

func TestGetStringFromDict(t *testing.T) {
	dict := types.Dict{
		"Title":  types.StringLiteral("Sample Book"),
		"Author": types.HexLiteral("A. Writer"),
		"Count":  types.Integer(3),
	}

	if got := getStringFromDict(dict, "Title"); got != "Sample Book" {
		t.Errorf("Title: got %q", got)
	}
	if got := getStringFromDict(dict, "Author"); got != "A. Writer" {
		t.Errorf("Author: got %q", got)
	}
	if got := getStringFromDict(dict, "Count"); got != "" {
		t.Errorf("Non-string value should yield empty, got %q", got)
	}
	if got := getStringFromDict(dict, "Missing"); got != "" {
		t.Errorf("Missing key should yield empty, got %q", got)
	}
	if got := getStringFromDict(nil, "Title"); got != "" {
		t.Errorf("Nil dict should yield empty, got %q", got)
	}
}

func TestParsePDFDate(t *testing.T) {
	got := parsePDFDate("D:20240131120000+00'00")
	want := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Got %v, want %v", got, want)
	}

	if got := parsePDFDate("garbage"); !got.IsZero() {
		t.Errorf("Unparseable date should yield zero time, got %v", got)
	}
	if got := parsePDFDate(""); !got.IsZero() {
		t.Errorf("Empty date should yield zero time, got %v", got)
	}
}
