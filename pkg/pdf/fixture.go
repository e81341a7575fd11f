package pdf

import (
	"fmt"
	"os"
)

// FixtureDocument is a deterministic in-memory Document used by tests and dry
// runs. It implements RangeExporter by writing a small placeholder file per
// range, so pipelines can be exercised without real PDF bytes.
type FixtureDocument struct {
	pages    int
	outline  []OutlineEntry
	metadata Metadata
	closed   bool

	// Exported records every ExportRange call in order.
	Exported []ExportedRange

	// FailExportAt, when >= 0, makes the ExportRange call with that ordinal
	// (0-based) fail. Used to test write-error propagation.
	FailExportAt int
}

// ExportedRange records a single ExportRange invocation.
type ExportedRange struct {
	StartPage int
	EndPage   int
	Path      string
}

// NewFixtureDocument creates a fixture with the given page count and outline.
func NewFixtureDocument(pageCount int, outline []OutlineEntry) *FixtureDocument {
	return &FixtureDocument{
		pages:        pageCount,
		outline:      outline,
		FailExportAt: -1,
	}
}

// GetMetadata returns the PDF metadata
func (d *FixtureDocument) GetMetadata() Metadata {
	return d.metadata
}

// SetMetadata sets the metadata returned by GetMetadata.
func (d *FixtureDocument) SetMetadata(m Metadata) {
	d.metadata = m
}

// PageCount returns the total number of pages
func (d *FixtureDocument) PageCount() int {
	if d.closed {
		return 0
	}
	return d.pages
}

// Outline returns the fixture outline
func (d *FixtureDocument) Outline() []OutlineEntry {
	if d.closed {
		return nil
	}
	return d.outline
}

// ExportRange writes a placeholder file recording the requested range.
func (d *FixtureDocument) ExportRange(startPage, endPage int, outPath string) error {
	if d.closed {
		return ErrClosed
	}
	if startPage < 0 || endPage < startPage || endPage >= d.pages {
		return fmt.Errorf("invalid page range [%d, %d]", startPage, endPage)
	}
	if d.FailExportAt == len(d.Exported) {
		return fmt.Errorf("fixture: export %d failed", d.FailExportAt)
	}

	content := fmt.Sprintf("fixture pdf: pages %d-%d of %d\n", startPage+1, endPage+1, d.pages)
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return err
	}
	d.Exported = append(d.Exported, ExportedRange{StartPage: startPage, EndPage: endPage, Path: outPath})
	return nil
}

// Close releases the fixture handle
func (d *FixtureDocument) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	return nil
}
