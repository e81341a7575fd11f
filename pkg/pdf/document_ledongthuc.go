package pdf

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements the Document interface using ledongthuc/pdf library.
// It is a read-only fallback: the library cannot write PDFs, and its outline type
// carries titles without resolved page targets, so Outline returns nil and the
// splitter degrades to the whole-document plan.
type LedongthucDocument struct {
	file      io.Closer
	reader    *lpdf.Reader
	filepath  string
	pageCount int
	metadata  Metadata
	closed    bool
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (Document, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	doc := &LedongthucDocument{
		file:      f,
		reader:    r,
		filepath:  filepath,
		pageCount: r.NumPage(),
	}

	doc.extractMetadata()

	return doc, nil
}

// extractMetadata extracts PDF metadata
func (d *LedongthucDocument) extractMetadata() {
	// The ledongthuc/pdf library does not expose the info dictionary directly.
	d.metadata = Metadata{}
}

// GetMetadata returns the PDF metadata
func (d *LedongthucDocument) GetMetadata() Metadata {
	return d.metadata
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	if d.closed {
		return 0
	}
	return d.pageCount
}

// Outline returns nil: outline destinations are not resolvable with this library
func (d *LedongthucDocument) Outline() []OutlineEntry {
	return nil
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
