package ports

import (
	"context"

	"go.trai.ch/cask/internal/core/domain"
)

// BuildFunc materializes an environment into the given target directory.
type BuildFunc func(ctx context.Context, dir string) error

// Holotree is the content-addressed cache of materialized environments.
//
//go:generate go run go.uber.org/mock/mockgen -source=holotree.go -destination=mocks/mock_holotree.go -package=mocks
type Holotree interface {
	// Resolve returns the environment for the given identity, invoking
	// build on a miss. authoritative is the file content the identity was
	// derived from; it is recorded in the completion marker. The returned
	// bool reports whether the resolution was a cache hit.
	//
	// If build fails the target directory is removed entirely before the
	// error is propagated, so a retry sees a clean miss.
	Resolve(ctx context.Context, identity string, authoritative []byte, build BuildFunc) (domain.Environment, bool, error)

	// Clean destroys the entire cache root.
	Clean(ctx context.Context) error

	// Root returns the cache root directory.
	Root() string
}
