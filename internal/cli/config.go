package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/launchts/launchts/pkg/version"
)

func newConfigCmd(d *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := d.Config.YAML()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if d.Config.Source != "" {
				_, _ = fmt.Fprintf(out, "# %s\n", d.Config.Source)
			}
			_, err = out.Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "launchts %s\n", version.GetFullVersion())
		},
	}
}
