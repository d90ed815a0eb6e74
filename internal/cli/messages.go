package cli

import (
	"fmt"
	"strings"

	"github.com/launchts/launchts/internal/core/project"
)

// User-facing messages.

func msgProjectCreated(name string) string {
	return fmt.Sprintf("✔ Project %s created", name)
}

func msgInvalidProjectName(name string) string {
	return fmt.Sprintf("✖ Invalid project name: %s. Use alphanumeric, hyphens, underscores (1-%d chars).", name, project.MaxNameLength)
}

func msgInvalidPackageManager(pm string) string {
	return fmt.Sprintf("✖ Invalid package manager: %s. Choose from: %s", pm, strings.Join(project.PackageManagerNames(), ", "))
}

func msgTargetExists(dir string) string {
	return "Target folder already exists: " + dir
}

func msgFailedToCreate(reason string) string {
	return "✖ Failed to create project: " + reason
}

func msgUnknownPackageManager(pm string) string {
	return fmt.Sprintf("⚠️  Unknown package manager: %s. Defaulting to npm.", pm)
}

func msgUnknownFlag(flag string) string {
	return fmt.Sprintf("⚠️  Unknown flag: %s. Use --help to see available options.", flag)
}

// msgStepWarning formats a downgraded provisioning failure with its reason
// and remediation tip.
func msgStepWarning(o project.StepOutcome, pm project.PackageManager) string {
	var headline string
	switch o.Step {
	case project.StepGit:
		headline = "Could not initialize git."
	case project.StepCommit:
		headline = "Could not create git commit."
	case project.StepInstall:
		headline = fmt.Sprintf("Could not install dependencies with %s.", pm)
	case project.StepHooks:
		headline = "Could not activate git hooks."
	default:
		headline = fmt.Sprintf("Step %s failed.", o.Step)
	}
	lines := []string{"⚠️  Warning: " + headline, "   Reason: " + o.Reason}
	if o.Tip != "" {
		lines = append(lines, "   Tip: "+o.Tip)
	}
	return strings.Join(lines, "\n")
}

// nextSteps lists what to run after creation.
func nextSteps(name string, opts project.Options, report *project.ProvisionReport) []string {
	steps := []string{"cd " + name}
	if o, ok := report.Step(project.StepInstall); !ok || o.Status != project.StepDone {
		steps = append(steps, string(opts.PackageManager)+" install")
	}
	steps = append(steps, opts.PackageManager.RunPrefix()+" build")
	if opts.Reload {
		steps = append(steps, opts.PackageManager.RunPrefix()+" dev")
	}
	return steps
}
