// Package pipeline assembles environment build steps into a single
// build function for the holotree cache.
package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
)

// Source names the requirements input for a build. Exactly one of LockPath
// and Requirements is used: a lockfile is installed as-is, inline
// requirements are materialized into a temporary file first.
type Source struct {
	Python       string
	LockPath     string
	Requirements string
}

// Builder turns a Source into a ports.BuildFunc. The resulting function
// creates the runtime, installs the requirements and leaves everything
// else (directories, markers, failure cleanup) to the cache.
type Builder struct {
	engine ports.Engine
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(engine ports.Engine, logger ports.Logger) *Builder {
	return &Builder{
		engine: engine,
		logger: logger,
	}
}

// BuildFunc returns the build function for the given source.
func (b *Builder) BuildFunc(src Source) ports.BuildFunc {
	return func(ctx context.Context, dir string) error {
		return b.build(ctx, dir, src)
	}
}

func (b *Builder) build(ctx context.Context, dir string, src Source) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create environment directory"), "path", dir)
	}

	b.logger.Info("creating runtime (python " + src.Python + ")")
	if err := b.engine.CreateVenv(ctx, dir, src.Python); err != nil {
		return err
	}

	reqsPath, cleanup, err := b.requirementsPath(src)
	if err != nil {
		return err
	}
	defer cleanup()

	b.logger.Info("installing dependencies")
	return b.engine.Install(ctx, dir, reqsPath)
}

// requirementsPath resolves the install input to an absolute file path.
// Relative lockfile paths are resolved against the caller's working
// directory before the engine changes into the environment directory.
func (b *Builder) requirementsPath(src Source) (string, func(), error) {
	if src.LockPath != "" {
		abs, err := filepath.Abs(src.LockPath)
		if err != nil {
			return "", nil, zerr.With(zerr.Wrap(err, "failed to resolve lockfile path"), "path", src.LockPath)
		}
		return abs, func() {}, nil
	}

	tmp, err := os.CreateTemp("", "cask-requirements-*.txt")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to create temporary requirements file")
	}
	name := tmp.Name()
	if _, err := tmp.WriteString(src.Requirements); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return "", nil, zerr.With(zerr.Wrap(err, "failed to write temporary requirements file"), "path", name)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return "", nil, zerr.With(zerr.Wrap(err, "failed to close temporary requirements file"), "path", name)
	}
	return name, func() { _ = os.Remove(name) }, nil
}
