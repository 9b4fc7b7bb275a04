// Package app orchestrates the cask operations on top of the ports.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/cask/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App wires the ports together into the user-facing operations. Each
// operation is one invocation: load state from disk, act, exit. Nothing is
// carried in memory between invocations.
type App struct {
	loader   ports.BlueprintLoader
	drift    ports.DriftDetector
	engine   ports.Engine
	holotree ports.Holotree
	builder  *pipeline.Builder
	runner   ports.PayloadRunner
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new App.
func New(
	loader ports.BlueprintLoader,
	drift ports.DriftDetector,
	engine ports.Engine,
	holotree ports.Holotree,
	builder *pipeline.Builder,
	runner ports.PayloadRunner,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:   loader,
		drift:    drift,
		engine:   engine,
		holotree: holotree,
		builder:  builder,
		runner:   runner,
		logger:   logger,
		tracer:   tracer,
	}
}

// Run resolves the environment for the manifest and executes argv inside it.
//
// The authoritative file for the identity is the lockfile when one exists
// and is current; a stale lockfile is regenerated first, so run never
// executes against pins that no longer match the manifest.
func (a *App) Run(ctx context.Context, manifestPath string, argv []string) error {
	blueprint, err := a.loader.Load(manifestPath)
	if err != nil {
		return err
	}

	projectRoot := filepath.Dir(manifestPath)
	lockPath := filepath.Join(projectRoot, domain.LockFileName)

	decision, err := a.drift.Check(manifestPath, lockPath)
	if err != nil {
		return err
	}
	if decision == domain.LockStale {
		a.logger.Warn("manifest changed since last lock, re-locking")
		if err := a.lock(ctx, blueprint, manifestPath, lockPath); err != nil {
			return err
		}
		decision = domain.LockAuthoritative
	}

	authoritativePath := manifestPath
	src := pipeline.Source{
		Python:       blueprint.Python,
		Requirements: blueprint.Requirements(),
	}
	if decision == domain.LockAuthoritative {
		authoritativePath = lockPath
		src = pipeline.Source{Python: blueprint.Python, LockPath: lockPath}
	} else {
		a.logger.Warn("no lockfile found, running in loose mode (run 'cask lock' to pin)")
	}

	identity, authoritative, err := domain.IdentityFromFile(authoritativePath, blueprint.Python, runtime.GOOS)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("identity %s (python %s, %s)", identity, blueprint.Python, decision))

	_, span := a.tracer.Start(ctx, "environment "+identity)
	env, hit, err := a.holotree.Resolve(ctx, identity, authoritative, a.builder.BuildFunc(src))
	if hit {
		span.Cached()
	}
	span.End(err)
	if err != nil {
		return err
	}

	return a.runner.Run(ctx, env, argv, projectRoot)
}

// Lock regenerates the lockfile from the manifest unconditionally.
func (a *App) Lock(ctx context.Context, manifestPath string) error {
	blueprint, err := a.loader.Load(manifestPath)
	if err != nil {
		return err
	}
	lockPath := filepath.Join(filepath.Dir(manifestPath), domain.LockFileName)
	if err := a.lock(ctx, blueprint, manifestPath, lockPath); err != nil {
		return err
	}
	a.logger.Info("locked dependencies to " + lockPath)
	return nil
}

// lock compiles the blueprint's dependencies into lockPath and records the
// manifest fingerprint so an untouched manifest is not re-locked later.
func (a *App) lock(ctx context.Context, blueprint *domain.Blueprint, manifestPath, lockPath string) error {
	_, span := a.tracer.Start(ctx, "lock dependencies")

	tmp, err := os.CreateTemp(filepath.Dir(manifestPath), "cask-requirements-*.txt")
	if err != nil {
		span.End(err)
		return zerr.Wrap(err, "failed to create temporary requirements file")
	}
	reqsPath := tmp.Name()
	defer func() { _ = os.Remove(reqsPath) }()

	if _, err := tmp.WriteString(blueprint.Requirements()); err != nil {
		_ = tmp.Close()
		span.End(err)
		return zerr.With(zerr.Wrap(err, "failed to write temporary requirements file"), "path", reqsPath)
	}
	if err := tmp.Close(); err != nil {
		span.End(err)
		return zerr.With(zerr.Wrap(err, "failed to close temporary requirements file"), "path", reqsPath)
	}

	if err := a.engine.Compile(ctx, reqsPath, lockPath, blueprint.Python); err != nil {
		span.End(err)
		return zerr.Wrap(err, domain.ErrLockFailed.Error())
	}

	if err := a.drift.RecordFingerprint(manifestPath); err != nil {
		span.End(err)
		return err
	}
	span.End(nil)
	return nil
}

// initManifest is the scaffold written by Init. The pinned runtime here is
// deliberately newer than the fallback default used for manifests that omit
// the field.
const initManifest = `name: %q
description: "New automation project"
python: "3.11"

dependencies:
  - robocorp-tasks
  - requests
`

const initPayload = `from robocorp.tasks import task
import os

@task
def my_task():
    print(f"Hello from cask! API_KEY present: {'API_KEY' in os.environ}")
`

// Init scaffolds a manifest and a sample payload in dir. The payload file is
// only written when absent; the manifest must not exist yet.
func (a *App) Init(dir, name string) error {
	manifestPath := filepath.Join(dir, domain.ManifestFileName)
	if _, err := os.Stat(manifestPath); err == nil {
		return zerr.With(domain.ErrManifestExists, "path", manifestPath)
	}

	if name == "" {
		name = filepath.Base(dir)
	}
	if name == "" || name == string(filepath.Separator) || name == "." {
		name = "my-robot"
	}

	manifest := fmt.Sprintf(initManifest, name)
	if err := os.WriteFile(manifestPath, []byte(manifest), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", manifestPath)
	}

	payloadPath := filepath.Join(dir, "robot.py")
	if _, err := os.Stat(payloadPath); err != nil {
		if err := os.WriteFile(payloadPath, []byte(initPayload), domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write sample payload"), "path", payloadPath)
		}
	}

	a.logger.Info("initialized project " + name)
	a.logger.Info("run it with: cask run -- -m robocorp.tasks run robot.py")
	return nil
}

// Clean destroys the entire environment cache.
func (a *App) Clean(ctx context.Context) error {
	root := a.holotree.Root()
	if err := a.holotree.Clean(ctx); err != nil {
		return err
	}
	a.logger.Info("removed environment cache at " + root)
	return nil
}

// CacheRoot returns the cache root directory, for confirmation prompts.
func (a *App) CacheRoot() string {
	return a.holotree.Root()
}
