package ports

import "context"

// EngineLocator ensures a local copy of the engine binary exists.
//
// The locator trusts presence: once a binary sits at the well-known path it
// is never re-verified for version or integrity. Re-bootstrapping requires
// deleting the binary manually.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type EngineLocator interface {
	// Ensure returns the path to the engine binary, downloading and
	// unpacking it on first use.
	Ensure(ctx context.Context) (string, error)
}
