package project

import (
	"context"

	"go.uber.org/zap"
)

// Result describes a created project.
type Result struct {
	Dir       string
	Artifacts *Artifacts
	Report    *ProvisionReport
}

// Scaffolder sequences the engine: validate, compose, materialize, provision.
type Scaffolder struct {
	composer     *Composer
	materializer *Materializer
	provisioner  *Provisioner
	logger       *zap.Logger
}

// NewScaffolder wires the engine components. A nil provisioner skips
// provisioning; a nil logger discards output.
func NewScaffolder(c *Composer, m *Materializer, p *Provisioner, logger *zap.Logger) *Scaffolder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scaffolder{composer: c, materializer: m, provisioner: p, logger: logger}
}

// Create builds project name under baseDir. Validation and precondition
// failures return before anything is written. Provisioning problems never
// fail the call; they are in Result.Report.
func (s *Scaffolder) Create(ctx context.Context, baseDir, name string, opts Options) (*Result, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if _, err := ParsePackageManager(string(opts.PackageManager)); err != nil {
		return nil, err
	}
	dir, err := TargetDir(baseDir, name)
	if err != nil {
		return nil, err
	}

	artifacts, err := s.composer.Compose(name, opts)
	if err != nil {
		return nil, err
	}
	if err := s.materializer.Materialize(ctx, dir, artifacts); err != nil {
		return nil, err
	}
	s.logger.Info("project created", zap.String("name", name), zap.String("dir", dir))

	res := &Result{Dir: dir, Artifacts: artifacts, Report: &ProvisionReport{}}
	if s.provisioner != nil {
		res.Report = s.provisioner.Provision(ctx, dir, opts)
	}
	return res, nil
}
