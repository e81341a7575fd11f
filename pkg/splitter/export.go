package splitter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pyhub-apps/pdfsplit-golang/pkg/pdf"
)

// ProgressFunc receives fractional progress in [0.0, 1.0] and a human-readable
// status message. Values are monotonically non-decreasing across one Export
// call, ending at exactly 1.0. A nil callback is valid.
type ProgressFunc func(progress float64, message string)

// Export materializes every plan as a standalone PDF in outDir, creating the
// directory (and parents) if missing and overwriting existing files of the
// same name. It returns the written paths in plan order.
//
// All plans are validated before anything is written: an empty plan set fails
// with ErrEmptyPlanSet and a plan with StartPage > EndPage fails with
// ErrDegenerateRange. A write failure aborts the remaining loop without
// rolling back files already written; the paths written so far are returned
// alongside the error.
func Export(doc pdf.Document, plans []SplitPlan, outDir string, onProgress ProgressFunc) ([]string, error) {
	if len(plans) == 0 {
		return nil, ErrEmptyPlanSet
	}
	for _, plan := range plans {
		if plan.StartPage > plan.EndPage {
			return nil, fmt.Errorf("%w: %q spans pages %d-%d", ErrDegenerateRange, plan.Name, plan.StartPage, plan.EndPage)
		}
	}

	exporter, ok := doc.(pdf.RangeExporter)
	if !ok {
		return nil, pdf.ErrNotExportable
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, len(plans))
	total := len(plans)

	for i, plan := range plans {
		report(onProgress, float64(i)/float64(total), "processing: "+plan.Title)

		outPath := filepath.Join(outDir, plan.Name+".pdf")
		if err := exporter.ExportRange(plan.StartPage, plan.EndPage, outPath); err != nil {
			return written, fmt.Errorf("failed to write %q: %w", outPath, err)
		}
		written = append(written, outPath)
	}

	report(onProgress, 1.0, fmt.Sprintf("done: %d files", len(written)))
	return written, nil
}

// report isolates the caller-supplied callback: a panic inside it must not
// abort the export or corrupt a write already committed to disk.
func report(fn ProgressFunc, progress float64, message string) {
	if fn == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	fn(progress, message)
}
