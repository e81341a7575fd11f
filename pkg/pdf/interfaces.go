package pdf

// Document represents an opened PDF document with methods for structural access.
// A Document handle is not safe for concurrent use; callers must serialize access.
type Document interface {
	// GetMetadata returns the PDF metadata
	GetMetadata() Metadata

	// PageCount returns the total number of pages
	PageCount() int

	// Outline returns the document outline as an ordered, depth-first flattened
	// sequence of entries. It returns nil when the document has no outline or the
	// backing library cannot resolve outline page targets.
	Outline() []OutlineEntry

	// Close releases resources associated with the document. Operations on a
	// closed handle fail with ErrClosed.
	Close() error
}

// RangeExporter is the capability of producing a standalone sub-range copy.
// The production pdfcpu adapter implements it; the read-only fallback adapters
// do not.
type RangeExporter interface {
	// ExportRange copies pages [startPage, endPage] (0-based, inclusive) verbatim
	// into a new standalone PDF written to outPath, overwriting any existing file.
	ExportRange(startPage, endPage int, outPath string) error
}
