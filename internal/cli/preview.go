package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/launchts/launchts/internal/cli/wizard"
	"github.com/launchts/launchts/internal/core/project"
	"github.com/launchts/launchts/internal/defs"
	"github.com/launchts/launchts/internal/ui"
)

func newPreviewCmd(d *Dependencies) *cobra.Command {
	previewCmd := &cobra.Command{
		Use:   "preview [name]",
		Short: "Show the files a project would get, without writing anything",
		Long: `Compose a project in memory and print its file list, package.json and
README. Options come from flags and the configured defaults; nothing is
prompted and nothing is written to disk.`,
		Args:               cobra.MaximumNArgs(1),
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, d)
		},
	}
	addSelectionFlags(previewCmd.Flags())
	previewCmd.Flags().Bool("raw", false, "Print the README as plain markdown")
	return previewCmd
}

func runPreview(cmd *cobra.Command, args []string, d *Dependencies) error {
	out := cmd.OutOrStdout()
	warn := func(msg string) { _, _ = fmt.Fprintln(cmd.ErrOrStderr(), d.Theme.Warning(msg)) }

	name := wizard.DefaultProjectName
	if len(args) > 0 {
		name = args[0]
	}
	if err := project.ValidateName(name); err != nil {
		return err
	}

	ov := overridesFromFlags(cmd.Flags())
	pm, err := d.packageManager(cmd.Flags(), warn)
	if err != nil {
		return err
	}
	ov.PackageManager = pm

	preset, ok := d.presetFromFlags(cmd.Flags())
	if !ok {
		preset = d.Config.Defaults
	}
	opts := project.Resolve(preset, ov)

	composer, err := d.composer()
	if err != nil {
		return err
	}
	a, err := composer.Compose(name, opts)
	if err != nil {
		return err
	}
	pkg, err := a.Manifest.Encode()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, d.Theme.Bold("Files"))
	for _, p := range a.Paths() {
		_, _ = fmt.Fprintln(out, "  "+name+"/"+p)
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, d.Theme.Bold(defs.PackageJSON))
	_, _ = fmt.Fprint(out, string(pkg))
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, d.Theme.Bold(defs.ReadmeMD))

	readme := a.Readme
	if !getBoolFlag(cmd, "raw") && ui.IsTerminal(out) {
		if readme, err = ui.RenderMarkdown(d.Theme, a.Readme, ui.DefaultWrap); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprint(out, readme)
	return nil
}
