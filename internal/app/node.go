package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/config"
	"go.trai.ch/cask/internal/adapters/drift"
	"go.trai.ch/cask/internal/adapters/holotree"
	"go.trai.ch/cask/internal/adapters/logger"
	"go.trai.ch/cask/internal/adapters/runner"
	"go.trai.ch/cask/internal/adapters/telemetry"
	"go.trai.ch/cask/internal/adapters/uv"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/cask/internal/engine/pipeline"
)

const (
	// NodeID is the graft identifier for the application orchestrator.
	NodeID graft.ID = "app"

	// ComponentsNodeID is the graft identifier for the top-level component
	// bundle resolved by the CLI entry point.
	ComponentsNodeID graft.ID = "app.components"
)

// Components is the bundle handed to the CLI: the orchestrator plus the
// ambient pieces the entry point needs to flush on shutdown.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			drift.NodeID,
			uv.NodeID,
			holotree.NodeID,
			pipeline.NodeID,
			runner.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.BlueprintLoader](ctx)
			if err != nil {
				return nil, err
			}
			detector, err := graft.Dep[ports.DriftDetector](ctx)
			if err != nil {
				return nil, err
			}
			engine, err := graft.Dep[ports.Engine](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.Holotree](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[*pipeline.Builder](ctx)
			if err != nil {
				return nil, err
			}
			payload, err := graft.Dep[ports.PayloadRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, detector, engine, cache, builder, payload, log, tracer), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log, Tracer: tracer}, nil
		},
	})
}
