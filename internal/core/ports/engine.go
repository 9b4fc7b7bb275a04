package ports

import "context"

// Engine models the external package-management tool as typed operations so
// the build pipeline is a plain sequence testable without a real subprocess.
// Every operation blocks until the child process exits; a non-zero exit
// status surfaces as an error carrying the exit code.
//
//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type Engine interface {
	// CreateVenv creates a fresh runtime of the requested version inside
	// dir. The version string is passed through unvalidated; the engine is
	// the version-resolution authority.
	CreateVenv(ctx context.Context, dir, python string) error

	// Compile pins the requirements file at reqsPath into a lockfile at
	// outPath for the given runtime version.
	Compile(ctx context.Context, reqsPath, outPath, python string) error

	// Install installs the requirements file at reqsPath into the runtime
	// previously created inside dir.
	Install(ctx context.Context, dir, reqsPath string) error
}
