package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/launchts/launchts/internal/defs"
	"github.com/launchts/launchts/internal/git"
	"github.com/launchts/launchts/internal/resilience"
	"github.com/launchts/launchts/internal/shell"
	"github.com/launchts/launchts/internal/tools"
)

// GitIgnoreContent lists the build output, dependency cache and env file.
const GitIgnoreContent = defs.NodeModulesDir + "\n" + defs.DistDir + "\n.env\n"

// Provisioning steps.
const (
	StepGit     = "git"
	StepCommit  = "commit"
	StepInstall = "install"
	StepHooks   = "hooks"
)

// StepStatus is the outcome kind of a provisioning step.
type StepStatus int

// Step statuses.
const (
	StepDone StepStatus = iota
	StepSkipped
	StepWarned
)

func (s StepStatus) String() string {
	switch s {
	case StepDone:
		return "done"
	case StepSkipped:
		return "skipped"
	case StepWarned:
		return "warned"
	}
	return fmt.Sprintf("StepStatus(%d)", int(s))
}

// StepOutcome records what happened to one provisioning step.
type StepOutcome struct {
	Step   string
	Status StepStatus
	Reason string // why it was skipped or what failed
	Tip    string // one-line remediation, set for warnings
	Err    error
}

// ProvisionReport collects step outcomes in execution order.
type ProvisionReport struct {
	Steps []StepOutcome
}

func (r *ProvisionReport) add(o StepOutcome) {
	r.Steps = append(r.Steps, o)
}

// Step returns the outcome of the named step.
func (r *ProvisionReport) Step(name string) (StepOutcome, bool) {
	for _, s := range r.Steps {
		if s.Step == name {
			return s, true
		}
	}
	return StepOutcome{}, false
}

// Warnings returns the steps that failed and were downgraded.
func (r *ProvisionReport) Warnings() []StepOutcome {
	var out []StepOutcome
	for _, s := range r.Steps {
		if s.Status == StepWarned {
			out = append(out, s)
		}
	}
	return out
}

// Remediation tips shown with provisioning warnings.
const (
	TipGitInit   = "Make sure git is installed ('git --version' should work)"
	TipGitCommit = `Run 'git config --global user.email "you@example.com"' and 'git config --global user.name "Your Name"'`
)

// TipInstall names the package manager the user should check.
func TipInstall(pm PackageManager) string {
	return fmt.Sprintf("Make sure %s is installed and try running '%s install' manually in the project directory", pm, pm)
}

// ProgressFunc wraps a long-running step, typically with a spinner.
type ProgressFunc func(title string, fn func() error) error

// Provisioner runs the optional post-materialization side effects. It never
// fails: every problem becomes a StepOutcome.
type Provisioner struct {
	runner        shell.Runner
	git           *git.Client
	registry      *tools.Registry
	retry         resilience.RetryPolicy
	commitMessage string
	progress      ProgressFunc
	logger        *zap.Logger
}

// ProvisionerOption configures a Provisioner.
type ProvisionerOption func(*Provisioner)

// withGitClient replaces the git client built over the runner.
func withGitClient(c *git.Client) ProvisionerOption {
	return func(p *Provisioner) { p.git = c }
}

// WithProvisionRegistry sets the registry used to find tool activations.
func WithProvisionRegistry(r *tools.Registry) ProvisionerOption {
	return func(p *Provisioner) { p.registry = r }
}

// WithInstallRetries sets how often a failed install is retried.
func WithInstallRetries(n int, baseDelay time.Duration) ProvisionerOption {
	return func(p *Provisioner) {
		p.retry.MaxRetries = n
		p.retry.BaseDelay = baseDelay
	}
}

// WithCommitMessage overrides the initial commit message.
func WithCommitMessage(msg string) ProvisionerOption {
	return func(p *Provisioner) {
		if msg != "" {
			p.commitMessage = msg
		}
	}
}

// WithProgress sets the progress wrapper for install steps.
func WithProgress(fn ProgressFunc) ProvisionerOption {
	return func(p *Provisioner) { p.progress = fn }
}

// NewProvisioner creates a Provisioner over runner. A nil logger discards output.
func NewProvisioner(runner shell.Runner, logger *zap.Logger, opts ...ProvisionerOption) *Provisioner {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Provisioner{
		runner:        runner,
		registry:      tools.Default(),
		retry:         resilience.RetryPolicy{MaxRetries: 1, BaseDelay: 2 * time.Second, MaxDelay: 15 * time.Second, UseJitter: true},
		commitMessage: git.DefaultCommitMessage,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.git == nil {
		p.git = git.NewClient(runner, logger)
	}
	if p.progress == nil {
		p.progress = func(_ string, fn func() error) error { return fn() }
	}
	p.retry.OnRetry = func(attempt int, err error, delay time.Duration) {
		p.logger.Info("retrying install",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err))
	}
	return p
}

// Provision runs version control setup, then dependency install, in dir.
// Install always precedes hook activation.
func (p *Provisioner) Provision(ctx context.Context, dir string, opts Options) *ProvisionReport {
	report := &ProvisionReport{}
	p.provisionGit(ctx, dir, opts, report)
	p.provisionInstall(ctx, dir, opts, report)
	return report
}

func (p *Provisioner) provisionGit(ctx context.Context, dir string, opts Options, report *ProvisionReport) {
	if !opts.Git {
		report.add(StepOutcome{Step: StepGit, Status: StepSkipped, Reason: "disabled"})
		return
	}
	if !p.git.Available(ctx) {
		report.add(StepOutcome{Step: StepGit, Status: StepSkipped, Reason: "git not found"})
		return
	}
	if p.git.InsideWorkTree(ctx, dir) {
		report.add(StepOutcome{Step: StepGit, Status: StepSkipped, Reason: "already inside a git repository"})
		return
	}

	if err := p.git.Init(ctx, dir); err != nil {
		p.warn(report, StepOutcome{Step: StepGit, Tip: TipGitInit, Err: err})
		return
	}
	if err := os.WriteFile(filepath.Join(dir, defs.GitIgnore), []byte(GitIgnoreContent), defs.FilePerm); err != nil {
		p.warn(report, StepOutcome{Step: StepGit, Tip: TipGitInit, Err: fmt.Errorf("write %s: %w", defs.GitIgnore, err)})
		return
	}
	report.add(StepOutcome{Step: StepGit, Status: StepDone})

	if opts.SkipCommit {
		report.add(StepOutcome{Step: StepCommit, Status: StepSkipped, Reason: "disabled"})
		return
	}
	err := p.git.AddAll(ctx, dir)
	if err == nil {
		err = p.git.Commit(ctx, dir, p.commitMessage)
	}
	if err != nil {
		p.warn(report, StepOutcome{Step: StepCommit, Tip: TipGitCommit, Err: err})
		return
	}
	report.add(StepOutcome{Step: StepCommit, Status: StepDone})
}

func (p *Provisioner) provisionInstall(ctx context.Context, dir string, opts Options, report *ProvisionReport) {
	activations := p.activations(opts)
	if !opts.Install {
		report.add(StepOutcome{Step: StepInstall, Status: StepSkipped, Reason: "disabled"})
		if len(activations) > 0 {
			report.add(StepOutcome{Step: StepHooks, Status: StepSkipped, Reason: "install disabled"})
		}
		return
	}

	pm := opts.PackageManager
	tip := TipInstall(pm)
	install := shell.Command{Dir: dir, Name: string(pm), Args: []string{"install"}}
	err := p.progress(fmt.Sprintf("Installing dependencies with %s", pm), func() error {
		return resilience.Retry(ctx, p.retry, func() error {
			_, err := p.runner.Run(ctx, install)
			if errors.Is(err, shell.ErrNotFound) {
				return resilience.Permanent(err)
			}
			return err
		})
	})
	if err != nil {
		p.warn(report, StepOutcome{Step: StepInstall, Tip: tip, Err: err})
		if len(activations) > 0 {
			report.add(StepOutcome{Step: StepHooks, Status: StepSkipped, Reason: "install failed"})
		}
		return
	}
	report.add(StepOutcome{Step: StepInstall, Status: StepDone})

	for _, a := range activations {
		if err := p.activate(ctx, dir, pm, a); err != nil {
			p.warn(report, StepOutcome{Step: StepHooks, Tip: tip, Err: err})
			continue
		}
		report.add(StepOutcome{Step: StepHooks, Status: StepDone})
	}
}

// activations returns the post-install commands of enabled tools, in order.
func (p *Provisioner) activations(opts Options) []*tools.Activation {
	var out []*tools.Activation
	for _, d := range p.registry.Ordered() {
		if opts.Enabled(d.ID) && d.Activation != nil {
			out = append(out, d.Activation)
		}
	}
	return out
}

func (p *Provisioner) activate(ctx context.Context, dir string, pm PackageManager, a *tools.Activation) error {
	name, args := pm.Exec(a.Args...)
	if _, err := p.runner.Run(ctx, shell.Command{Dir: dir, Name: name, Args: args}); err != nil {
		return err
	}
	if a.HookFile == "" || len(a.Fallback) == 0 {
		return nil
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(a.HookFile))); err == nil {
		return nil
	}
	p.logger.Debug("hook file missing after activation, adding it", zap.String("file", a.HookFile))
	name, args = pm.Exec(a.Fallback...)
	_, err := p.runner.Run(ctx, shell.Command{Dir: dir, Name: name, Args: args})
	return err
}

func (p *Provisioner) warn(report *ProvisionReport, o StepOutcome) {
	o.Status = StepWarned
	o.Reason = o.Err.Error()
	p.logger.Warn("provisioning step failed", zap.String("step", o.Step), zap.Error(o.Err))
	report.add(o)
}
