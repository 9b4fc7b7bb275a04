// Package domain contains the core types for the cask environment manager.
package domain

import (
	"path/filepath"
	"runtime"
)

const (
	// CaskDirName is the name of the per-user cask directory.
	CaskDirName = ".cask"

	// HolotreeDirName is the name of the environment cache directory.
	HolotreeDirName = "holotree"

	// BinDirName is the name of the engine binary directory.
	BinDirName = "bin"

	// CacheDirName is the name of the metadata cache directory.
	CacheDirName = "cache"

	// LockStateDirName is the name of the lock fingerprint cache directory.
	LockStateDirName = "locks"

	// ManifestFileName is the name of the project manifest.
	ManifestFileName = "cask.yaml"

	// LockFileName is the name of the generated lockfile, sibling to the manifest.
	LockFileName = "cask.lock"

	// VenvDirName is the runtime subtree inside a materialized environment.
	VenvDirName = ".venv"

	// MarkerFileName is the completion marker written as the last build step.
	MarkerFileName = ".cask-node.json"

	// EnvFileName is the secrets file loaded at payload execution time.
	EnvFileName = ".env"

	// DefaultPython is the runtime version used when the manifest omits one.
	DefaultPython = "3.10"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission applied to the extracted engine binary.
	ExecPerm = 0o755
)

// Layout carries the on-disk locations shared by all components. It is built
// once at process start from the user home directory so tests can point the
// whole tool at a temporary root.
type Layout struct {
	Home string
}

// NewLayout creates a Layout rooted at the given home directory.
func NewLayout(home string) Layout {
	return Layout{Home: home}
}

// CaskRoot returns the per-user cask directory.
func (l Layout) CaskRoot() string {
	return filepath.Join(l.Home, CaskDirName)
}

// HolotreeRoot returns the root of the environment cache.
func (l Layout) HolotreeRoot() string {
	return filepath.Join(l.CaskRoot(), HolotreeDirName)
}

// BinDir returns the directory holding the engine binary.
func (l Layout) BinDir() string {
	return filepath.Join(l.CaskRoot(), BinDirName)
}

// EnginePath returns the well-known path of the engine binary.
func (l Layout) EnginePath() string {
	return filepath.Join(l.BinDir(), EngineBinaryName())
}

// LockStateDir returns the directory holding manifest fingerprints recorded
// at lock time.
func (l Layout) LockStateDir() string {
	return filepath.Join(l.CaskRoot(), CacheDirName, LockStateDirName)
}

// EngineBinaryName returns the platform-specific engine executable name.
func EngineBinaryName() string {
	if runtime.GOOS == "windows" {
		return "uv.exe"
	}
	return "uv"
}

// PythonRelPath returns the interpreter path relative to an environment root.
func PythonRelPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(VenvDirName, "Scripts", "python.exe")
	}
	return filepath.Join(VenvDirName, "bin", "python")
}
