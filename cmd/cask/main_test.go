package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cask/internal/adapters/logger"
	"go.trai.ch/cask/internal/adapters/telemetry"
	"go.trai.ch/cask/internal/app"
)

func TestRun_ProviderFailure(t *testing.T) {
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"version"}, &stderr, func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRun_VersionCommand(t *testing.T) {
	var stderr bytes.Buffer

	components := &app.Components{
		App:    app.New(nil, nil, nil, nil, nil, nil, logger.New(), telemetry.NewNoop()),
		Logger: logger.New(),
		Tracer: telemetry.NewNoop(),
	}

	code := run(context.Background(), []string{"version"}, &stderr, func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	})

	assert.Equal(t, 0, code)
}

func TestRun_UnknownCommand(t *testing.T) {
	var stderr bytes.Buffer

	components := &app.Components{
		App:    app.New(nil, nil, nil, nil, nil, nil, logger.New(), telemetry.NewNoop()),
		Logger: logger.New(),
		Tracer: telemetry.NewNoop(),
	}

	code := run(context.Background(), []string{"frobnicate"}, &stderr, func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	})

	assert.Equal(t, 1, code)
}
