package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/launchts/launchts/internal/ui"
	"github.com/launchts/launchts/pkg/version"
)

// reportedError marks an error whose message was already shown to the user.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// newRootCmd builds the command tree over d.
func newRootCmd(d *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "launchts [name]",
		Short: "Scaffold a ready-to-build TypeScript project",
		Long: `launchts creates a new TypeScript project in ./<name>: package.json,
tsconfig.json, src/index.ts and a README, plus any of ESLint, Prettier,
Husky with lint-staged, and a nodemon dev script.

Afterwards it can initialize a git repository with an initial commit and
install dependencies with npm, yarn or pnpm.

Examples:
  launchts                     Ask for everything interactively
  launchts my-app --yes        Enable every tool, git and install
  launchts my-app -d --pm pnpm Sensible defaults, installed with pnpm
  launchts my-app --eslint --no-install`,
		Version:            version.GetVersion(),
		Args:               cobra.MaximumNArgs(1),
		SilenceErrors:      true,
		SilenceUsage:       true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return d.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, d)
		},
	}
	rootCmd.SetVersionTemplate("launchts {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default: $LAUNCHTS_CONFIG or <user config dir>/launchts/config.yaml)")
	pf.Bool("verbose", false, "Show debug logs and external command output")

	addSelectionFlags(rootCmd.Flags())
	addProvisionFlags(rootCmd.Flags())

	rootCmd.AddCommand(newPreviewCmd(d), newConfigCmd(d), newVersionCmd())
	return rootCmd
}

// Execute runs the launchts command line with os.Args.
func Execute() error {
	return execute(defaultDependencies(), os.Args[1:], os.Stdout, os.Stderr)
}

func execute(d *Dependencies, args []string, stdout, stderr io.Writer) error {
	if d.Theme == nil {
		d.Theme = ui.DetectTheme()
	}
	rootCmd := newRootCmd(d)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	unknown, kept := scanFlags(rootCmd, args)
	for _, f := range unknown {
		_, _ = fmt.Fprintln(stderr, d.Theme.Warning(msgUnknownFlag(f)))
	}
	rootCmd.SetArgs(kept)

	err := rootCmd.Execute()
	if d.Logger != nil {
		_ = d.Logger.Sync()
	}
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			_, _ = fmt.Fprintln(stderr, d.Theme.Error("✖ "+err.Error()))
		}
	}
	return err
}

// scanFlags splits args into the flags the target command does not define
// and the args with those flags removed. Unknown flags never take a value,
// so a following bare word stays a positional argument.
func scanFlags(root *cobra.Command, args []string) (unknown, kept []string) {
	cmd, _, err := root.Find(args)
	if err != nil || cmd == nil {
		cmd = root
	}
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	kept = make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			kept = append(kept, args[i:]...)
			break
		}
		switch {
		case strings.HasPrefix(arg, "--"):
			name, _, _ := strings.Cut(arg[2:], "=")
			if name != "" && lookupFlag(cmd, name) == nil {
				unknown = append(unknown, "--"+name)
				continue
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			var cluster strings.Builder
			cluster.WriteByte('-')
			for j, c := range arg[1:] {
				if c == '=' {
					cluster.WriteString(arg[1+j:])
					break
				}
				f := lookupShorthand(cmd, c)
				if f == nil {
					unknown = append(unknown, "-"+string(c))
					continue
				}
				cluster.WriteRune(c)
				if f.Value.Type() != "bool" {
					// the rest is the flag's value
					cluster.WriteString(arg[1+j+1:])
					break
				}
			}
			if cluster.Len() > 1 {
				kept = append(kept, cluster.String())
			}
			continue
		}
		kept = append(kept, arg)
	}
	return unknown, kept
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

func lookupShorthand(cmd *cobra.Command, c rune) *pflag.Flag {
	if c > 127 {
		return nil
	}
	if f := cmd.Flags().ShorthandLookup(string(c)); f != nil {
		return f
	}
	return cmd.InheritedFlags().ShorthandLookup(string(c))
}
