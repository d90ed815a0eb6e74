package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/launchts/launchts/internal/cli/wizard"
	"github.com/launchts/launchts/internal/core/project"
	"github.com/launchts/launchts/internal/ui"
)

// runWizard asks the questions. Tests replace it.
var runWizard = wizard.Run

// runCreate executes the project creation workflow: resolve options from
// flags, config and prompts, then scaffold and report.
func runCreate(cmd *cobra.Command, args []string, d *Dependencies) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	warn := func(msg string) { _, _ = fmt.Fprintln(errOut, d.Theme.Warning(msg)) }
	fail := func(msg string, err error) error {
		_, _ = fmt.Fprintln(errOut, d.Theme.Error(msg))
		return &reportedError{err: err}
	}

	var name string
	if len(args) > 0 {
		name = args[0]
		if err := project.ValidateName(name); err != nil {
			return fail(msgInvalidProjectName(name), err)
		}
	}

	ov := overridesFromFlags(cmd.Flags())
	pm, err := d.packageManager(cmd.Flags(), warn)
	if err != nil {
		return fail(msgInvalidPackageManager(getStringFlag(cmd, "pm")), err)
	}
	ov.PackageManager = pm

	opts, name, err := d.resolveOptions(cmd, name, ov)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(errOut, d.Theme.Muted("Cancelled."))
			return nil
		}
		if errors.Is(err, project.ErrNameRequired) {
			return fail("✖ A project name is required when not running in a terminal: launchts <name>", err)
		}
		return err
	}
	d.Logger.Debug("resolved options",
		zap.String("name", name),
		zap.String("package_manager", string(opts.PackageManager)),
		zap.Bool("lint", opts.Lint),
		zap.Bool("format", opts.Format),
		zap.Bool("hooks", opts.Hooks),
		zap.Bool("reload", opts.Reload),
		zap.Bool("git", opts.Git),
		zap.Bool("install", opts.Install))

	var progress project.ProgressFunc
	if !opts.Verbose {
		progress = ui.NewProgress(d.Theme, d.Headless, out).Run
	}
	scaffolder, err := d.scaffolder(progress)
	if err != nil {
		return fail(msgFailedToCreate(err.Error()), err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := scaffolder.Create(ctx, d.BaseDir, name, opts)
	if err != nil {
		switch {
		case errors.Is(err, project.ErrInvalidName):
			return fail(msgInvalidProjectName(name), err)
		case errors.Is(err, project.ErrInvalidPackageManager):
			return fail(msgInvalidPackageManager(string(opts.PackageManager)), err)
		case errors.Is(err, project.ErrTargetExists):
			dir, _ := project.TargetDir(d.BaseDir, name)
			return fail(msgFailedToCreate(msgTargetExists(dir)), err)
		default:
			return fail(msgFailedToCreate(err.Error()), err)
		}
	}

	for _, w := range res.Report.Warnings() {
		warn(msgStepWarning(w, opts.PackageManager))
	}
	if len(res.Artifacts.Fallbacks) > 0 {
		warn(fmt.Sprintf("⚠️  No pinned version for %s; using %q.",
			strings.Join(res.Artifacts.Fallbacks, ", "), d.Config.FallbackVersion))
	}

	_, _ = fmt.Fprintln(out, d.Theme.Success(msgProjectCreated(name)))
	_, _ = fmt.Fprintln(out, d.Theme.Card(d.Theme.Bold("Next steps")+"\n"+
		d.Theme.Muted("  "+strings.Join(nextSteps(name, opts, res.Report), "\n  "))))
	return nil
}

// resolveOptions turns flags, config presets and, on a terminal, prompt
// answers into the final options and project name.
func (d *Dependencies) resolveOptions(cmd *cobra.Command, name string, ov project.Overrides) (project.Options, string, error) {
	preset, hasPreset := d.presetFromFlags(cmd.Flags())
	interactive := !d.Headless.IsHeadless()

	if !interactive {
		if name == "" {
			return project.Options{}, "", project.ErrNameRequired
		}
		if !hasPreset {
			preset = d.Config.Defaults
		}
		return project.Resolve(preset, ov), name, nil
	}

	if hasPreset {
		if name == "" {
			answers, err := runWizard([]wizard.Question{wizard.NameQuestion()}, d.Theme.Colors)
			if err != nil {
				return project.Options{}, "", err
			}
			name = answers.ProjectName
		}
		return project.Resolve(preset, ov), name, nil
	}

	initial := project.Resolve(project.CustomBase, ov)
	answers, err := runWizard(wizard.Questions(d.Registry, initial, name == ""), d.Theme.Colors)
	if err != nil {
		return project.Options{}, "", err
	}
	if name == "" {
		name = answers.ProjectName
	}
	return project.Resolve(project.CustomBase, answers.Overrides(ov)), name, nil
}
