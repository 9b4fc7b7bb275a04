// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/cask/internal/core/domain"

// BlueprintLoader loads and validates a project manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type BlueprintLoader interface {
	// Load reads the manifest at the given path into a Blueprint. The
	// runtime version defaults when absent; dependency order and
	// duplicates are preserved as authored.
	Load(path string) (*domain.Blueprint, error)
}
