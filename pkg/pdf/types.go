package pdf

import (
	"time"
)

// OutlineEntry represents a single entry of the document outline (table of contents).
type OutlineEntry struct {
	Level int    // 1 = top-level chapter, deeper entries increase from there
	Title string // may be empty
	Page  int    // 1-based page number of the entry's first page
}

// Metadata represents PDF document metadata
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate time.Time
	ModDate      time.Time
}
