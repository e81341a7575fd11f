package pdf

import (
	"fmt"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDFDocument implements the Document interface using pdfcpu.
// It is the only adapter that also implements RangeExporter.
type PDFDocument struct {
	ctx      *model.Context
	conf     *model.Configuration
	filepath string
	outline  []OutlineEntry
	metadata Metadata
	closed   bool
}

// Open opens a PDF file and returns a Document
func Open(filepath string) (Document, error) {
	return OpenWithPassword(filepath, "")
}

// OpenWithPassword opens a password-protected PDF file
func OpenWithPassword(filepath string, password string) (Document, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, filepath)
	}
	defer f.Close()

	// Create pdfcpu configuration
	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	// Parse PDF with pdfcpu, passing the configuration so decryption sees the password
	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	// Validate the PDF
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}

	doc := &PDFDocument{
		ctx:      ctx,
		conf:     conf,
		filepath: filepath,
	}

	doc.extractMetadata()
	doc.extractOutline()

	return doc, nil
}

// extractMetadata extracts PDF metadata from the document info dictionary
func (d *PDFDocument) extractMetadata() {
	d.metadata = Metadata{}
	if d.ctx.Info == nil {
		return
	}
	dict, err := d.ctx.DereferenceDict(*d.ctx.Info)
	if err != nil || dict == nil {
		return
	}

	d.metadata = Metadata{
		Title:        getStringFromDict(dict, "Title"),
		Author:       getStringFromDict(dict, "Author"),
		Subject:      getStringFromDict(dict, "Subject"),
		Keywords:     getStringFromDict(dict, "Keywords"),
		Creator:      getStringFromDict(dict, "Creator"),
		Producer:     getStringFromDict(dict, "Producer"),
		CreationDate: parsePDFDate(getStringFromDict(dict, "CreationDate")),
		ModDate:      parsePDFDate(getStringFromDict(dict, "ModDate")),
	}
}

// extractOutline reads the bookmark tree and flattens it depth-first.
func (d *PDFDocument) extractOutline() {
	f, err := os.Open(d.filepath)
	if err != nil {
		return
	}
	defer f.Close()

	bms, err := api.Bookmarks(f, d.conf)
	if err != nil {
		// pdfcpu reports an error for documents without an outline; that is the
		// whole-document fallback case, not a failure.
		return
	}
	d.outline = flattenBookmarks(bms, 1, nil)
}

func flattenBookmarks(bms []pdfcpu.Bookmark, level int, out []OutlineEntry) []OutlineEntry {
	for _, bm := range bms {
		out = append(out, OutlineEntry{
			Level: level,
			Title: bm.Title,
			Page:  bm.PageFrom,
		})
		if len(bm.Kids) > 0 {
			out = flattenBookmarks(bm.Kids, level+1, out)
		}
	}
	return out
}

// GetMetadata returns the PDF metadata
func (d *PDFDocument) GetMetadata() Metadata {
	return d.metadata
}

// PageCount returns the total number of pages
func (d *PDFDocument) PageCount() int {
	if d.closed {
		return 0
	}
	return d.ctx.PageCount
}

// Outline returns the flattened document outline
func (d *PDFDocument) Outline() []OutlineEntry {
	if d.closed {
		return nil
	}
	return d.outline
}

// ExportRange copies pages [startPage, endPage] (0-based, inclusive) into a new
// standalone PDF at outPath. The source document is never mutated.
func (d *PDFDocument) ExportRange(startPage, endPage int, outPath string) error {
	if d.closed {
		return ErrClosed
	}
	if startPage < 0 || endPage < startPage {
		return fmt.Errorf("invalid page range [%d, %d]", startPage, endPage)
	}
	if endPage >= d.ctx.PageCount {
		return fmt.Errorf("page range [%d, %d] exceeds page count %d", startPage, endPage, d.ctx.PageCount)
	}

	// pdfcpu page selections are 1-based and inclusive.
	selection := []string{fmt.Sprintf("%d-%d", startPage+1, endPage+1)}
	if err := api.TrimFile(d.filepath, outPath, selection, d.conf); err != nil {
		return fmt.Errorf("failed to export pages %d-%d: %w", startPage+1, endPage+1, err)
	}
	return nil
}

// Close releases resources associated with the document
func (d *PDFDocument) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	d.ctx = nil
	d.outline = nil
	return nil
}

// Helper functions

func getStringFromDict(dict types.Dict, key string) string {
	if dict == nil {
		return ""
	}

	obj := dict[key]
	if obj == nil {
		return ""
	}

	switch v := obj.(type) {
	case types.StringLiteral:
		return string(v)
	case types.HexLiteral:
		return string(v)
	default:
		return ""
	}
}

func parsePDFDate(dateStr string) time.Time {
	// PDF date format: D:YYYYMMDDHHmmSSOHH'mm
	if len(dateStr) >= 2 && dateStr[:2] == "D:" {
		dateStr = dateStr[2:]
	}

	layout := "20060102150405"
	if len(dateStr) >= 14 {
		t, err := time.Parse(layout, dateStr[:14])
		if err == nil {
			return t
		}
	}

	return time.Time{}
}
