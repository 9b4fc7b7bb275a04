package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/core/domain"
)

// NodeID is the graft identifier for the layout provider.
const NodeID graft.ID = "adapter.layout"

func init() {
	graft.Register(graft.Node[domain.Layout]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (domain.Layout, error) {
			return ResolveLayout()
		},
	})
}
