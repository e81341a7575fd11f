package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	pdfsplit "github.com/pyhub-apps/pdfsplit-golang"
)

const usage = `Usage: pdfsplit <command> [options] <pdf_file>

Commands:
  toc    print the document outline
  plan   print the split plan without writing anything
  split  split the document into per-chapter files

Split options:
  -o dir   output directory (default: <pdf_name>_chapters)
  -tui     show an interactive progress display
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "toc":
		runTOC(os.Args[2:])
	case "plan":
		runPlan(os.Args[2:])
	case "split":
		runSplit(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func openDocument(args []string) (pdfsplit.Document, string) {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	path := args[0]
	doc, err := pdfsplit.Open(path)
	if err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	return doc, path
}

func runTOC(args []string) {
	doc, path := openDocument(args)
	defer doc.Close()

	fmt.Printf("%s: %d pages\n", filepath.Base(path), doc.PageCount())
	meta := doc.GetMetadata()
	if meta.Title != "" {
		fmt.Printf("Title:  %s\n", meta.Title)
	}
	if meta.Author != "" {
		fmt.Printf("Author: %s\n", meta.Author)
	}
	fmt.Println()

	outline := doc.Outline()
	if len(outline) == 0 {
		fmt.Println("No outline found")
		return
	}
	for _, e := range outline {
		indent := strings.Repeat("  ", e.Level-1)
		fmt.Printf("%s[%d] %s (page %d)\n", indent, e.Level, e.Title, e.Page)
	}
}

func runPlan(args []string) {
	doc, path := openDocument(args)
	defer doc.Close()

	plans := pdfsplit.Analyze(doc)
	fmt.Printf("%s: %d pages, %d segments\n\n", filepath.Base(path), doc.PageCount(), len(plans))
	fmt.Printf("%-44s %8s %8s %8s\n", "output file", "start", "end", "pages")
	for _, p := range plans {
		fmt.Printf("%-44s %8d %8d %8d\n", p.Name+".pdf", p.StartPage+1, p.EndPage+1, p.PageSpan())
	}
}

func runSplit(args []string) {
	fs := flag.NewFlagSet("split", flag.ExitOnError)
	outDir := fs.String("o", "", "output directory")
	useTUI := fs.Bool("tui", false, "show an interactive progress display")
	fs.Parse(args)

	doc, path := openDocument(fs.Args())
	defer doc.Close()

	if *outDir == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		*outDir = base + "_chapters"
	}

	plans := pdfsplit.Analyze(doc)

	if *useTUI {
		files, err := runSplitTUI(doc, plans, *outDir)
		if err != nil {
			log.Fatalf("Split failed: %v", err)
		}
		fmt.Printf("Wrote %d files to %s\n", len(files), *outDir)
		return
	}

	progress := func(p float64, msg string) {
		fmt.Fprintf(os.Stderr, "[%3.0f%%] %s\n", p*100, msg)
	}
	files, err := pdfsplit.Export(doc, plans, *outDir, progress)
	if err != nil {
		log.Fatalf("Split failed: %v", err)
	}
	for _, f := range files {
		fmt.Println(f)
	}
}
