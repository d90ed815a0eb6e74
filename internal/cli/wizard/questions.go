package wizard

import (
	"github.com/launchts/launchts/internal/core/project"
	"github.com/launchts/launchts/internal/tools"
)

// NameQuestion asks for the project name.
func NameQuestion() Question {
	return Question{
		ID:          IDProjectName,
		Type:        QuestionTypeInput,
		Title:       "Project name",
		Description: "Letters, digits, '.', '_' and '-' (1-214 characters)",
		Default:     DefaultProjectName,
		Validate:    project.ValidateName,
	}
}

// ToolQuestions asks one confirm per registered tool, in registry order.
// Initial answers come from opts so flags pre-select their tools.
func ToolQuestions(reg *tools.Registry, opts project.Options) []Question {
	descs := reg.Ordered()
	qs := make([]Question, 0, len(descs))
	for _, d := range descs {
		qs = append(qs, Question{
			ID:      toolPrefix + string(d.ID),
			Type:    QuestionTypeConfirm,
			Title:   d.Prompt,
			Initial: opts.Enabled(d.ID),
		})
	}
	return qs
}

// ProvisionQuestions confirms git and install with the resolved values as initial answers.
func ProvisionQuestions(git, install bool) []Question {
	return []Question{
		{ID: IDGit, Type: QuestionTypeConfirm, Title: "Initialize a git repository?", Initial: git},
		{ID: IDInstall, Type: QuestionTypeConfirm, Title: "Install dependencies now?", Initial: install},
	}
}

// Questions assembles the full wizard. The name question is included only
// when needName is set.
func Questions(reg *tools.Registry, opts project.Options, needName bool) []Question {
	var qs []Question
	if needName {
		qs = append(qs, NameQuestion())
	}
	qs = append(qs, ToolQuestions(reg, opts)...)
	return append(qs, ProvisionQuestions(opts.Git, opts.Install)...)
}

// Overrides turns answers into option overrides. Unanswered questions leave
// the corresponding option untouched.
func (a *Answers) Overrides(base project.Overrides) project.Overrides {
	ov := base
	for id, on := range a.Tools {
		ov.SetTool(id, on)
	}
	ov.Git = project.Bool(a.Git)
	ov.Install = project.Bool(a.Install)
	return ov
}
