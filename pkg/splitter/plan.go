// Package splitter computes chapter boundaries from a document outline and
// materializes each chapter as a standalone PDF.
package splitter

import (
	"fmt"

	"github.com/pyhub-apps/pdfsplit-golang/pkg/pdf"
)

// SplitPlan describes one output file: its sanitized name and the inclusive
// 0-based page range to copy.
type SplitPlan struct {
	Name      string // sanitized, without .pdf extension; not guaranteed unique
	StartPage int    // 0-based, inclusive
	EndPage   int    // 0-based, inclusive
	Title     string // original, unsanitized title
	Level     int    // 0 = synthetic segment (leading matter, whole document), 1 = chapter
}

// PageSpan returns the number of pages covered by the plan.
func (p SplitPlan) PageSpan() int {
	return p.EndPage - p.StartPage + 1
}

// Analyze converts the document outline into an ordered sequence of split
// plans. It is a pure function of the outline and page count and never fails:
// a document without level-1 outline entries yields a single whole-document
// plan.
//
// When level-1 entries exist, the returned ranges partition [0, pageCount-1]
// in page order: an optional leading-matter plan for pages before the first
// chapter, then one plan per chapter ending right before the next chapter's
// first page. Entries are taken strictly in outline order; outlines whose page
// numbers regress can therefore produce a plan with StartPage > EndPage, which
// is passed through for Export to reject.
func Analyze(doc pdf.Document) []SplitPlan {
	pageCount := doc.PageCount()

	var chapters []pdf.OutlineEntry
	for _, e := range doc.Outline() {
		if e.Level == 1 {
			chapters = append(chapters, e)
		}
	}

	if len(chapters) == 0 {
		return []SplitPlan{{
			Name:      "00_full_document",
			StartPage: 0,
			EndPage:   pageCount - 1,
			Title:     "full document",
			Level:     0,
		}}
	}

	plans := make([]SplitPlan, 0, len(chapters)+1)

	// Leading matter: cover, preface, the table of contents itself.
	firstStart := chapters[0].Page - 1
	if firstStart > 0 {
		plans = append(plans, SplitPlan{
			Name:      "00_leading_section",
			StartPage: 0,
			EndPage:   firstStart - 1,
			Title:     "leading section",
			Level:     0,
		})
	}

	for i, ch := range chapters {
		start := ch.Page - 1
		end := pageCount - 1
		if i+1 < len(chapters) {
			end = chapters[i+1].Page - 2
		}
		plans = append(plans, SplitPlan{
			Name:      fmt.Sprintf("%02d_%s", i+1, SanitizeTitle(ch.Title)),
			StartPage: start,
			EndPage:   end,
			Title:     ch.Title,
			Level:     1,
		})
	}

	return plans
}
