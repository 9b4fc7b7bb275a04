// Package wiring pulls in every package that registers a graft node, so the
// entry point only needs a single blank import to assemble the graph.
package wiring

import (
	_ "go.trai.ch/cask/internal/adapters/bootstrap"
	_ "go.trai.ch/cask/internal/adapters/config"
	_ "go.trai.ch/cask/internal/adapters/drift"
	_ "go.trai.ch/cask/internal/adapters/fs"
	_ "go.trai.ch/cask/internal/adapters/holotree"
	_ "go.trai.ch/cask/internal/adapters/logger"
	_ "go.trai.ch/cask/internal/adapters/runner"
	_ "go.trai.ch/cask/internal/adapters/telemetry"
	_ "go.trai.ch/cask/internal/adapters/uv"
	_ "go.trai.ch/cask/internal/app"
	_ "go.trai.ch/cask/internal/engine/pipeline"
)
