// Package wizard asks the interactive questions of "launchts": the project
// name, one confirm per tool, then git and install.
package wizard

import (
	"errors"

	"github.com/launchts/launchts/internal/tools"
)

// DefaultProjectName is offered when no name was given on the command line.
const DefaultProjectName = "my-ts-app"

// Answers holds the user's responses.
type Answers struct {
	ProjectName string
	Tools       map[tools.ID]bool
	Git         bool
	Install     bool
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeInput is a text input question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	Default     string // input default, used when the answer is empty
	Initial     bool   // confirm initial value
	Validate    func(string) error
}

// Question IDs that are not tools.
const (
	IDProjectName = "project_name"
	IDGit         = "git"
	IDInstall     = "install"
)

// toolPrefix marks tool confirm questions: "tool:<id>".
const toolPrefix = "tool:"

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
