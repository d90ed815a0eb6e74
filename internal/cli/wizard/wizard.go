package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/launchts/launchts/internal/tools"
	"github.com/launchts/launchts/internal/ui"
)

// runForm runs a single form. Tests replace it to answer questions.
var runForm = func(f *huh.Form) error { return f.Run() }

// Run asks the questions in order and collects the answers.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func Run(questions []Question, palette ui.Palette) (*Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := &Answers{Tools: make(map[tools.ID]bool)}
	theme := newWizardTheme(palette)

	for i := range questions {
		q := &questions[i]
		field, commit := buildField(q)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := runForm(form); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		if err := commit(answers); err != nil {
			return nil, err
		}
	}

	return answers, nil
}

// buildField creates the huh field for q and a commit func that stores the
// final value into the answers once the form is done.
func buildField(q *Question) (huh.Field, func(*Answers) error) {
	switch q.Type {
	case QuestionTypeConfirm:
		value := q.Initial
		c := huh.NewConfirm().
			Title(q.Title).
			Affirmative("Yes").
			Negative("No").
			Value(&value)
		if q.Description != "" {
			c = c.Description(q.Description)
		}
		return c, func(a *Answers) error {
			saveConfirm(q.ID, value, a)
			return nil
		}
	default:
		var value string
		inp := huh.NewInput().
			Title(q.Title).
			Value(&value)
		if q.Description != "" {
			inp = inp.Description(q.Description)
		}
		if q.Default != "" {
			inp = inp.Placeholder(q.Default)
		}
		inp = inp.Validate(func(val string) error {
			return validateInput(q, val)
		})
		return inp, func(a *Answers) error {
			v := inputValue(q, value)
			if err := validateInput(q, v); err != nil {
				return err
			}
			saveInput(q.ID, v, a)
			return nil
		}
	}
}

// inputValue trims val and falls back to the default when empty.
func inputValue(q *Question, val string) string {
	v := strings.TrimSpace(val)
	if v == "" {
		v = q.Default
	}
	return v
}

func validateInput(q *Question, val string) error {
	if q.Validate == nil {
		return nil
	}
	return q.Validate(inputValue(q, val))
}

func saveInput(id, value string, a *Answers) {
	if id == IDProjectName {
		a.ProjectName = value
	}
}

func saveConfirm(id string, value bool, a *Answers) {
	switch id {
	case IDGit:
		a.Git = value
	case IDInstall:
		a.Install = value
	default:
		if after, ok := strings.CutPrefix(id, toolPrefix); ok {
			a.Tools[tools.ID(after)] = value
		}
	}
}

// newWizardTheme creates a huh.Theme from the launchts palette.
func newWizardTheme(p ui.Palette) *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.Color(p.Primary)
	green := lipgloss.Color(p.Success)
	red := lipgloss.Color(p.Error)
	muted := lipgloss.Color(p.Muted)
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F2F2F2"}

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
