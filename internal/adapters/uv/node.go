package uv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/bootstrap"
	"go.trai.ch/cask/internal/adapters/logger"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the graft identifier for the uv engine adapter.
const NodeID graft.ID = "adapter.engine"

func init() {
	graft.Register(graft.Node[ports.Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{bootstrap.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Engine, error) {
			locator, err := graft.Dep[ports.EngineLocator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(locator, log), nil
		},
	})
}
