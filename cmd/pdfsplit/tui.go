package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	pdfsplit "github.com/pyhub-apps/pdfsplit-golang"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// progressMsg carries one splitter progress callback into the UI loop.
type progressMsg struct {
	fraction float64
	message  string
}

// doneMsg signals that the export goroutine finished.
type doneMsg struct {
	files []string
	err   error
}

type splitModel struct {
	bar      progress.Model
	outDir   string
	fraction float64
	message  string
	files    []string
	err      error
	done     bool
}

func (m splitModel) Init() tea.Cmd {
	return nil
}

func (m splitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Quitting abandons the process; the export itself has no cancellation.
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("aborted")
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 6
		if m.bar.Width > 60 {
			m.bar.Width = 60
		}
		return m, nil

	case progressMsg:
		m.fraction = msg.fraction
		m.message = msg.message
		return m, nil

	case doneMsg:
		m.files = msg.files
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m splitModel) View() string {
	if m.done {
		if m.err != nil {
			return errStyle.Render("split failed: "+m.err.Error()) + "\n"
		}
		return doneStyle.Render(fmt.Sprintf("done: %d files in %s", len(m.files), m.outDir)) + "\n"
	}

	return titleStyle.Render("splitting into "+m.outDir) + "\n" +
		m.bar.ViewAs(m.fraction) + "\n" +
		statusStyle.Render(m.message) + "\n"
}

// runSplitTUI runs the export on a background goroutine and marshals its
// progress callbacks into the bubbletea event loop.
func runSplitTUI(doc pdfsplit.Document, plans []pdfsplit.SplitPlan, outDir string) ([]string, error) {
	m := splitModel{
		bar:    progress.New(progress.WithDefaultGradient()),
		outDir: outDir,
	}
	p := tea.NewProgram(m)

	go func() {
		files, err := pdfsplit.Export(doc, plans, outDir, func(fraction float64, message string) {
			p.Send(progressMsg{fraction: fraction, message: message})
		})
		p.Send(doneMsg{files: files, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	fm := final.(splitModel)
	return fm.files, fm.err
}
