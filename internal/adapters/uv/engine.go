// Package uv drives the external uv binary as typed engine operations.
package uv

import (
	"context"
	"os/exec"
	"path/filepath"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine implements ports.Engine by spawning the uv binary. Every operation
// blocks until the child exits; there is no timeout beyond context
// cancellation, so a hung child hangs the invocation.
type Engine struct {
	locator ports.EngineLocator
	logger  ports.Logger
}

// NewEngine creates an Engine resolving the uv binary through the locator.
func NewEngine(locator ports.EngineLocator, logger ports.Logger) *Engine {
	return &Engine{
		locator: locator,
		logger:  logger,
	}
}

// CreateVenv creates a fresh runtime inside dir. The version string is
// handed to uv unvalidated; uv is the version-resolution authority.
func (e *Engine) CreateVenv(ctx context.Context, dir, python string) error {
	return e.run(ctx, dir, domain.ErrVenvCreateFailed,
		"venv", domain.VenvDirName, "--python", python)
}

// Compile pins the requirements at reqsPath into a lockfile at outPath.
func (e *Engine) Compile(ctx context.Context, reqsPath, outPath, python string) error {
	return e.run(ctx, "", domain.ErrLockFailed,
		"pip", "compile", reqsPath, "-o", outPath, "--python", python)
}

// Install installs the requirements at reqsPath into the runtime in dir.
// The working directory is dir, so reqsPath must be absolute when it lives
// elsewhere.
func (e *Engine) Install(ctx context.Context, dir, reqsPath string) error {
	return e.run(ctx, dir, domain.ErrInstallFailed,
		"pip", "install", "-r", reqsPath)
}

func (e *Engine) run(ctx context.Context, dir string, sentinel error, args ...string) error {
	enginePath, err := e.locator.Ensure(ctx)
	if err != nil {
		return err
	}

	//nolint:gosec // enginePath is the bootstrapped engine binary
	cmd := exec.CommandContext(ctx, enginePath, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Stdout = &logWriter{logger: e.logger, level: levelInfo}
	cmd.Stderr = &logWriter{logger: e.logger, level: levelWarn}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		opErr := zerr.Wrap(err, sentinel.Error())
		opErr = zerr.With(opErr, "engine", filepath.Base(enginePath))
		opErr = zerr.With(opErr, "args", args)
		return zerr.With(opErr, "exit_code", exitCode)
	}
	return nil
}

var _ ports.Engine = (*Engine)(nil)
