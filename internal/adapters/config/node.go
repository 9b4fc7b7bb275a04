package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cask/internal/core/ports"
)

// NodeID is the graft identifier for the manifest loader adapter.
const NodeID graft.ID = "adapter.blueprint_loader"

func init() {
	graft.Register(graft.Node[ports.BlueprintLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BlueprintLoader, error) {
			return NewLoader(), nil
		},
	})
}
