package drift

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/adapters/fs"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the graft identifier for the drift detector adapter.
const NodeID graft.ID = "adapter.drift_detector"

func init() {
	graft.Register(graft.Node[ports.DriftDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.DriftDetector, error) {
			layout, err := graft.Dep[domain.Layout](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(layout), nil
		},
	})
}
