package ports

import (
	"context"

	"go.trai.ch/cask/internal/core/domain"
)

// PayloadRunner launches the user payload inside a materialized environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type PayloadRunner interface {
	// Run executes argv with the environment's interpreter, injecting
	// key/value pairs from a secrets file in projectRoot when present.
	// It blocks until the child exits and returns a payload failure for
	// any non-zero exit status.
	Run(ctx context.Context, env domain.Environment, argv []string, projectRoot string) error
}
