package pdf

import (
	"errors"
)

var (
	// ErrNotFound is returned when the input path does not exist or is not readable.
	ErrNotFound = errors.New("pdf: file not found")

	// ErrClosed is returned when an operation is attempted on a closed document handle.
	ErrClosed = errors.New("pdf: document is closed")

	// ErrNotExportable is returned when a page-range export is requested from a
	// document whose backing library cannot write PDFs.
	ErrNotExportable = errors.New("pdf: document does not support page-range export")
)
