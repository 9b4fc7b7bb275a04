package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cask/internal/core/domain"
)

func TestComputeIdentity_Deterministic(t *testing.T) {
	content := []byte("requests==2.31.0\n")

	a := domain.ComputeIdentity("3.11", content, "linux")
	b := domain.ComputeIdentity("3.11", content, "linux")

	assert.Equal(t, a, b)
	assert.Len(t, a, domain.IdentityLength)
}

func TestComputeIdentity_DivergesPerInput(t *testing.T) {
	content := []byte("requests==2.31.0\n")
	base := domain.ComputeIdentity("3.11", content, "linux")

	tests := []struct {
		name    string
		python  string
		content []byte
		osID    string
	}{
		{"different python", "3.12", content, "linux"},
		{"different content", "3.11", []byte("requests==2.32.0\n"), "linux"},
		{"different os", "3.11", content, "darwin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputeIdentity(tt.python, tt.content, tt.osID)
			assert.NotEqual(t, base, got)
		})
	}
}

func TestIdentityFromFile(t *testing.T) {
	content := []byte("requests==2.31.0\n")
	path := filepath.Join(t.TempDir(), domain.LockFileName)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	identity, data, err := domain.IdentityFromFile(path, "3.11", "linux")
	require.NoError(t, err)
	assert.Equal(t, domain.ComputeIdentity("3.11", content, "linux"), identity)
	assert.Equal(t, content, data)
}

func TestIdentityFromFile_MissingFile(t *testing.T) {
	_, _, err := domain.IdentityFromFile(filepath.Join(t.TempDir(), "absent"), "3.11", "linux")
	require.ErrorIs(t, err, domain.ErrIdentityReadFailed)
}
