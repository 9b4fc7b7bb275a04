// Package config provides the YAML manifest loader for cask.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.BlueprintLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// blueprintDTO mirrors the manifest schema on disk.
type blueprintDTO struct {
	Name         string    `yaml:"name"`
	Description  string    `yaml:"description"`
	Python       string    `yaml:"python"`
	Dependencies *[]string `yaml:"dependencies"`
}

// Load reads a manifest file into a Blueprint. The python version defaults
// when absent; the dependencies key is required but may be an empty list.
// Dependency order and duplicates are preserved exactly as authored.
func (l *Loader) Load(path string) (*domain.Blueprint, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var dto blueprintDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	if dto.Dependencies == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestParseFailed, "missing required key 'dependencies'"), "path", path)
	}

	python := dto.Python
	if python == "" {
		python = domain.DefaultPython
	}

	return &domain.Blueprint{
		Name:         dto.Name,
		Description:  dto.Description,
		Python:       python,
		Dependencies: *dto.Dependencies,
	}, nil
}

var _ ports.BlueprintLoader = (*Loader)(nil)
