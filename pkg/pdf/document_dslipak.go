package pdf

import (
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

// DsliPakDocument implements the Document interface using dslipak/pdf library.
// Like the ledongthuc adapter it is read-only and reports no outline.
type DsliPakDocument struct {
	reader    *gopdf.Reader
	filepath  string
	pageCount int
	metadata  Metadata
	closed    bool
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (Document, error) {
	r, err := gopdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	doc := &DsliPakDocument{
		reader:    r,
		filepath:  filepath,
		pageCount: r.NumPage(),
	}

	doc.extractMetadata()

	return doc, nil
}

// extractMetadata extracts PDF metadata
func (d *DsliPakDocument) extractMetadata() {
	// The dslipak/pdf library doesn't directly expose metadata
	d.metadata = Metadata{}
}

// GetMetadata returns the PDF metadata
func (d *DsliPakDocument) GetMetadata() Metadata {
	return d.metadata
}

// PageCount returns the total number of pages
func (d *DsliPakDocument) PageCount() int {
	if d.closed {
		return 0
	}
	return d.pageCount
}

// Outline returns nil: outline destinations are not resolvable with this library
func (d *DsliPakDocument) Outline() []OutlineEntry {
	return nil
}

// Close releases resources associated with the document
func (d *DsliPakDocument) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	return nil
}
