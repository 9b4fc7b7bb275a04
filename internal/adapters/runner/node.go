package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/logger"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the graft identifier for the payload runner adapter.
const NodeID graft.ID = "adapter.payload_runner"

func init() {
	graft.Register(graft.Node[ports.PayloadRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PayloadRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
