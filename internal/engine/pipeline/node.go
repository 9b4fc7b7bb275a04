package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/logger"
	"go.trai.ch/cask/internal/adapters/uv"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the graft identifier for the build pipeline.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{uv.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			engine, err := graft.Dep[ports.Engine](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(engine, log), nil
		},
	})
}
