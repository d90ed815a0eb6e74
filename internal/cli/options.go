package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/launchts/launchts/internal/core/project"
	"github.com/launchts/launchts/internal/tools"
)

// toolFlags maps tool flag names to registry ids.
var toolFlags = []struct {
	flag  string
	id    tools.ID
	usage string
}{
	{"eslint", tools.Lint, "Add ESLint"},
	{"prettier", tools.Format, "Add Prettier"},
	{"husky", tools.Hooks, "Add Husky and lint-staged pre-commit hooks"},
	{"nodemon", tools.Reload, "Add a nodemon dev script"},
}

// addSelectionFlags registers the flags that choose the generated project's
// contents. Shared by the create and preview commands.
func addSelectionFlags(fs *pflag.FlagSet) {
	fs.BoolP("yes", "y", false, "Skip prompts and enable every tool, git and install")
	fs.BoolP("default", "d", false, "Skip prompts and use the sensible defaults")
	for _, tf := range toolFlags {
		fs.Bool(tf.flag, false, tf.usage)
	}
	fs.String("pm", "", fmt.Sprintf("Package manager (%s); detected when omitted", strings.Join(project.PackageManagerNames(), ", ")))
}

// addProvisionFlags registers the post-create step toggles.
func addProvisionFlags(fs *pflag.FlagSet) {
	fs.Bool("git", true, "Initialize a git repository")
	fs.Bool("no-git", false, "Skip git initialization")
	fs.Bool("install", true, "Install dependencies")
	fs.Bool("no-install", false, "Skip dependency installation")
	fs.Bool("no-commit", false, "Initialize git without the initial commit")
}

// overridesFromFlags collects only the flags the user actually set, so
// presets and prompts keep their own values for the rest.
func overridesFromFlags(fs *pflag.FlagSet) project.Overrides {
	var ov project.Overrides
	for _, tf := range toolFlags {
		if fs.Changed(tf.flag) {
			v, _ := fs.GetBool(tf.flag)
			ov.SetTool(tf.id, v)
		}
	}
	ov.Git = toggle(fs, "git", "no-git")
	ov.Install = toggle(fs, "install", "no-install")
	ov.SkipCommit = flagBool(fs, "no-commit")
	ov.Verbose = flagBool(fs, "verbose")
	return ov
}

// toggle resolves a --x / --no-x pair. The negative form wins.
func toggle(fs *pflag.FlagSet, on, off string) *bool {
	if fs.Lookup(off) != nil && fs.Changed(off) && flagBool(fs, off) {
		return project.Bool(false)
	}
	if fs.Lookup(on) != nil && fs.Changed(on) {
		return project.Bool(flagBool(fs, on))
	}
	return nil
}

func flagBool(fs *pflag.FlagSet, name string) bool {
	v, err := fs.GetBool(name)
	return err == nil && v
}

// packageManager picks the package manager: the --pm flag, then the
// configuration, then detection from the environment. An invalid flag value
// is an error; an invalid configured value falls back to npm with a warning.
func (d *Dependencies) packageManager(fs *pflag.FlagSet, warn func(string)) (project.PackageManager, error) {
	if fs.Changed("pm") {
		v, _ := fs.GetString("pm")
		return project.ParsePackageManager(v)
	}
	if v := d.Config.PackageManager; v != "" {
		pm, ok := project.CoercePackageManager(v)
		if !ok {
			warn(msgUnknownPackageManager(v))
		}
		return pm, nil
	}
	return project.DetectPackageManager(d.Getenv(project.UserAgentEnv), d.BaseDir), nil
}

// presetFromFlags returns the preset chosen by --yes or --default.
func (d *Dependencies) presetFromFlags(fs *pflag.FlagSet) (project.Preset, bool) {
	switch {
	case flagBool(fs, "yes"):
		return project.AllEnabled, true
	case flagBool(fs, "default"):
		return d.Config.Defaults, true
	}
	return project.Preset{}, false
}
