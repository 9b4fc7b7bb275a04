package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cask/internal/core/domain"
)

func TestLayout_Paths(t *testing.T) {
	l := domain.NewLayout(filepath.Join("home", "user"))

	assert.Equal(t, filepath.Join("home", "user", ".cask"), l.CaskRoot())
	assert.Equal(t, filepath.Join("home", "user", ".cask", "holotree"), l.HolotreeRoot())
	assert.Equal(t, filepath.Join("home", "user", ".cask", "bin"), l.BinDir())
	assert.Equal(t, filepath.Join("home", "user", ".cask", "cache", "locks"), l.LockStateDir())
	assert.Equal(t, filepath.Join(l.BinDir(), domain.EngineBinaryName()), l.EnginePath())
}

func TestEnvironment_Paths(t *testing.T) {
	env := domain.Environment{
		Identity: "abc123",
		Root:     filepath.Join("cache", "abc123"),
	}

	assert.Equal(t, filepath.Join("cache", "abc123", ".venv"), env.VenvPath())
	assert.Equal(t, filepath.Join("cache", "abc123", domain.PythonRelPath()), env.PythonPath())
	assert.Equal(t, filepath.Join("cache", "abc123", ".cask-node.json"), env.MarkerPath())
}
