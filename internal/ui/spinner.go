package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	Stop()
}

// Progress starts spinners on a writer, animated only on a terminal.
type Progress struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to w.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) *Progress {
	return &Progress{theme: theme, headless: hm, writer: w}
}

// Spinner creates a spinner. Without a terminal, or without colour, it
// prints the title as a plain line instead.
func (p *Progress) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor || !IsTerminal(p.writer) {
		return newHeadlessSpinner(title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title, p.writer)
}

// Run shows a spinner titled title while fn runs.
func (p *Progress) Run(title string, fn func() error) error {
	s := p.Spinner(title)
	defer s.Stop()
	return fn()
}

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

// newInteractiveSpinner starts a tea program that renders to w. Input is
// not read so that child processes keep the terminal.
func newInteractiveSpinner(theme *Theme, title string, w io.Writer) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	return startSpinner(p)
}

func startSpinner(p *tea.Program) *interactiveSpinner {
	s := &interactiveSpinner{program: p, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		_, _ = p.Run()
	}()
	return s
}

// Stop halts the spinner and waits for the program to exit.
func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		<-s.done
	})
}

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct{}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	_, _ = fmt.Fprintf(w, "%s...\n", strings.TrimSuffix(title, "..."))
	return &headlessSpinner{}
}

// Stop is a no-op.
func (s *headlessSpinner) Stop() {}
