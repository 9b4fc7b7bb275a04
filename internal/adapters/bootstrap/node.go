package bootstrap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/fs"
	"go.trai.ch/cask/internal/adapters/logger"
	"go.trai.ch/cask/internal/adapters/telemetry"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the graft identifier for the engine locator adapter.
const NodeID graft.ID = "adapter.engine_locator"

func init() {
	graft.Register(graft.Node[ports.EngineLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, telemetry.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.EngineLocator, error) {
			layout, err := graft.Dep[domain.Layout](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(layout, tracer, log), nil
		},
	})
}
