// Package cli provides the Cobra command tree of launchts. This file
// defines the Dependencies struct (Composition Root) that wires the engine
// together from configuration and flags.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/launchts/launchts/internal/config"
	"github.com/launchts/launchts/internal/core/project"
	"github.com/launchts/launchts/internal/manifest"
	"github.com/launchts/launchts/internal/shell"
	"github.com/launchts/launchts/internal/tools"
	"github.com/launchts/launchts/internal/ui"
)

// installRetryDelay is the base backoff between install attempts.
const installRetryDelay = 2 * time.Second

// Dependencies holds the services used by commands. This is the only place
// where concrete engine types are instantiated. Fields left nil are filled
// by load from flags and the environment; tests preset them.
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Runner   shell.Runner
	Registry *tools.Registry

	// BaseDir is where projects are created. Empty means the working directory.
	BaseDir string
	Getenv  func(string) string
}

// defaultDependencies returns the production wiring before flags are known.
func defaultDependencies() *Dependencies {
	return &Dependencies{
		Theme:    ui.DetectTheme(),
		Headless: ui.NewHeadlessManager(),
		Getenv:   os.Getenv,
	}
}

// load completes the dependencies once flags are parsed.
func (d *Dependencies) load(cmd *cobra.Command) error {
	verbose := getBoolFlag(cmd, "verbose")

	if d.Theme == nil {
		d.Theme = ui.DetectTheme()
	}
	if d.Headless == nil {
		d.Headless = ui.NewHeadlessManager()
	}
	if d.Getenv == nil {
		d.Getenv = os.Getenv
	}
	if d.Registry == nil {
		d.Registry = tools.Default()
	}
	if d.Logger == nil {
		d.Logger = newLogger(cmd.ErrOrStderr(), verbose)
	}
	if d.Config == nil {
		cfg, err := config.Load(getStringFlag(cmd, "config"))
		if err != nil {
			return err
		}
		d.Config = cfg
	}
	if d.BaseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		d.BaseDir = wd
	}
	if d.Runner == nil {
		opts := []shell.Option{shell.WithLogger(d.Logger)}
		if verbose {
			opts = append(opts, shell.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
		}
		d.Runner = shell.NewExecRunner(opts...)
	}
	return nil
}

// newLogger returns a development console logger on w when verbose is set,
// and a no-op logger otherwise.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// versionSource chains the configured pins, the optional reference
// manifest and the built-in reference, in that order.
func (d *Dependencies) versionSource() (manifest.VersionSource, error) {
	sources := []manifest.VersionSource{manifest.Pins(d.Config.Versions)}
	if path := d.Config.ReferenceManifest; path != "" {
		ref, err := manifest.LoadReference(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, ref)
	}
	sources = append(sources, tools.DefaultReference())
	return manifest.Chain(sources...), nil
}

// composer builds the artifact composer from configuration.
func (d *Dependencies) composer() (*project.Composer, error) {
	versions, err := d.versionSource()
	if err != nil {
		return nil, err
	}
	return project.NewComposer(
		project.WithRegistry(d.Registry),
		project.WithVersions(versions),
		project.WithFallbackVersion(d.Config.FallbackVersion),
		project.WithLogger(d.Logger),
	)
}

// scaffolder wires the whole engine. progress wraps install steps; nil
// runs them without an indicator.
func (d *Dependencies) scaffolder(progress project.ProgressFunc) (*project.Scaffolder, error) {
	composer, err := d.composer()
	if err != nil {
		return nil, err
	}
	opts := []project.ProvisionerOption{
		project.WithProvisionRegistry(d.Registry),
		project.WithInstallRetries(d.Config.InstallRetries, installRetryDelay),
		project.WithCommitMessage(d.Config.CommitMessage),
	}
	if progress != nil {
		opts = append(opts, project.WithProgress(progress))
	}
	provisioner := project.NewProvisioner(d.Runner, d.Logger, opts...)
	return project.NewScaffolder(composer, project.NewMaterializer(d.Logger), provisioner, d.Logger), nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
