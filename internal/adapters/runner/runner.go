// Package runner launches the user payload inside a materialized environment.
package runner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.PayloadRunner using os/exec. The payload's
// stdio is wired straight through to the user's terminal; cask does not
// interpose on its output.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes argv with the environment's interpreter. If a secrets file
// exists in projectRoot its pairs are injected into the child environment,
// overriding inherited values.
func (r *Runner) Run(ctx context.Context, env domain.Environment, argv []string, projectRoot string) error {
	childEnv := environMap()
	childEnv["VIRTUAL_ENV"] = env.VenvPath()

	if err := r.loadSecrets(childEnv, projectRoot); err != nil {
		return err
	}

	python := env.PythonPath()
	//nolint:gosec // argv is the user's own payload command
	cmd := exec.CommandContext(ctx, python, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = flatten(childEnv)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		// The child is an opaque process; no attempt to introspect why.
		payloadErr := zerr.Wrap(err, domain.ErrPayloadFailed.Error())
		payloadErr = zerr.With(payloadErr, "command", strings.Join(argv, " "))
		return zerr.With(payloadErr, "exit_code", exitCode)
	}
	return nil
}

func (r *Runner) loadSecrets(env map[string]string, projectRoot string) error {
	secretsPath := filepath.Join(projectRoot, domain.EnvFileName)
	content, err := os.ReadFile(secretsPath) //nolint:gosec // project-local secrets file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read secrets file"), "path", secretsPath)
	}

	r.logger.Info("loading secrets from " + domain.EnvFileName)
	return parseEnvFile(env, content, secretsPath)
}

func environMap() map[string]string {
	env := make(map[string]string)
	for _, entry := range os.Environ() {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	return env
}

func flatten(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return result
}

var _ ports.PayloadRunner = (*Runner)(nil)
