package uv

import (
	"strings"

	"go.trai.ch/cask/internal/core/ports"
)

type logLevel int

const (
	levelInfo logLevel = iota
	levelWarn
)

// logWriter forwards subprocess output to the logger line by line. uv
// writes progress to stderr, which is surfaced as warnings so it stays
// visible without being mistaken for cask's own output.
type logWriter struct {
	logger ports.Logger
	level  logLevel
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(msg, "\n") {
		if line == "" {
			continue
		}
		if w.level == levelInfo {
			w.logger.Info(line)
		} else {
			w.logger.Warn(line)
		}
	}
	return len(p), nil
}
