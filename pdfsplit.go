// Package pdfsplit splits a PDF document into standalone per-chapter files
// along the boundaries of its outline (table of contents).
package pdfsplit

import (
	"github.com/pyhub-apps/pdfsplit-golang/pkg/pdf"
	"github.com/pyhub-apps/pdfsplit-golang/pkg/splitter"
)

// Re-export types from pdf and splitter packages for public API
type (
	Document     = pdf.Document
	OutlineEntry = pdf.OutlineEntry
	Metadata     = pdf.Metadata
	SplitPlan    = splitter.SplitPlan
	ProgressFunc = splitter.ProgressFunc
)

// Re-export core operations
var (
	Analyze       = splitter.Analyze
	Export        = splitter.Export
	SanitizeTitle = splitter.SanitizeTitle
)

// Open opens a PDF file and returns a Document
func Open(filepath string) (pdf.Document, error) {
	// Try pdfcpu first: it is the only adapter that can export page ranges,
	// and it resolves outline page targets.
	doc, err := pdf.Open(filepath)
	if err == nil {
		return doc, nil
	}

	// Fallback to read-only adapters so analysis still works on files pdfcpu
	// rejects. These report no outline, so splitting degrades to the
	// whole-document plan, and Export fails with pdf.ErrNotExportable.
	doc, err2 := pdf.OpenWithLedongthuc(filepath)
	if err2 == nil {
		return doc, nil
	}

	doc, err2 = pdf.OpenWithDslipak(filepath)
	if err2 == nil {
		return doc, nil
	}

	// Report the pdfcpu error: it is the most descriptive of the three.
	return nil, err
}

// OpenWithPassword opens a password-protected PDF file
func OpenWithPassword(filepath string, password string) (pdf.Document, error) {
	return pdf.OpenWithPassword(filepath, password)
}
