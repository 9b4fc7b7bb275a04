package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cask/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("creating runtime")
	log.Warn("no lockfile found")
	log.Error(zerr.New("install exploded"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "creating runtime")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "no lockfile found")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "install exploded")
}

func TestLogger_ErrorIncludesMetadata(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	err := zerr.With(zerr.New("download failed"), "url", "https://example.com/uv.tar.gz")
	log.Error(err)

	assert.Contains(t, buf.String(), "download failed")
}
