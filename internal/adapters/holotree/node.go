package holotree

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/fs"
	"go.trai.ch/cask/internal/adapters/logger"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the graft identifier for the holotree adapter.
const NodeID graft.ID = "adapter.holotree"

func init() {
	graft.Register(graft.Node[ports.Holotree]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Holotree, error) {
			layout, err := graft.Dep[domain.Layout](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(layout, log), nil
		},
	})
}
