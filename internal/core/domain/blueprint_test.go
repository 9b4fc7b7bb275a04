package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cask/internal/core/domain"
)

func TestBlueprint_Requirements(t *testing.T) {
	b := &domain.Blueprint{
		Python:       "3.11",
		Dependencies: []string{"robocorp-tasks", "requests>=2.31", "requests>=2.31"},
	}

	// Order and duplicates flow through as authored.
	assert.Equal(t, "robocorp-tasks\nrequests>=2.31\nrequests>=2.31", b.Requirements())
}

func TestBlueprint_RequirementsEmpty(t *testing.T) {
	b := &domain.Blueprint{Python: "3.10", Dependencies: []string{}}
	assert.Equal(t, "", b.Requirements())
}
