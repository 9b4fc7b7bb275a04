// Package drift decides whether a lockfile is stale relative to its manifest.
package drift

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
)

// Detector implements ports.DriftDetector.
//
// The primary signal is the timestamp heuristic: a manifest modified after
// its lockfile is considered drifted. Timestamps alone both false-positive
// (a re-save without semantic change) and false-negative (content reverted
// to an older state without touching the lockfile), so the detector keeps a
// content fingerprint of the manifest, recorded at lock time, and only
// reports staleness when the fingerprint changed too. With no recorded
// fingerprint it falls back to the bare timestamp comparison.
type Detector struct {
	layout domain.Layout
}

// NewDetector creates a Detector storing fingerprints under the cask cache.
func NewDetector(layout domain.Layout) *Detector {
	return &Detector{layout: layout}
}

// lockState is the JSON sidecar recorded for a manifest at lock time.
type lockState struct {
	ManifestPath string `json:"manifest_path"`
	Fingerprint  string `json:"fingerprint"`
	RecordedAt   int64  `json:"recorded_at"`
}

// Check compares the manifest against the sibling lockfile.
func (d *Detector) Check(manifestPath, lockPath string) (domain.DriftDecision, error) {
	manifestInfo, err := os.Stat(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.LooseMode, zerr.With(domain.ErrManifestNotFound, "path", manifestPath)
		}
		return domain.LooseMode, zerr.With(zerr.Wrap(err, "failed to stat manifest"), "path", manifestPath)
	}

	lockInfo, err := os.Stat(lockPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.LooseMode, nil
		}
		return domain.LooseMode, zerr.With(zerr.Wrap(err, "failed to stat lockfile"), "path", lockPath)
	}

	if !manifestInfo.ModTime().After(lockInfo.ModTime()) {
		return domain.LockAuthoritative, nil
	}

	// The manifest is newer. Before forcing a re-lock, see whether its
	// content actually changed since the last lock.
	fingerprint, err := fingerprintFile(manifestPath)
	if err != nil {
		return domain.LooseMode, err
	}
	if state, ok := d.loadState(manifestPath); ok && state.Fingerprint == fingerprint {
		return domain.LockAuthoritative, nil
	}

	return domain.LockStale, nil
}

// RecordFingerprint stores the manifest's content fingerprint, called after
// a successful lock.
func (d *Detector) RecordFingerprint(manifestPath string) error {
	fingerprint, err := fingerprintFile(manifestPath)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(manifestPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve manifest path"), "path", manifestPath)
	}

	if err := os.MkdirAll(d.layout.LockStateDir(), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create lock state directory")
	}

	state := lockState{
		ManifestPath: absPath,
		Fingerprint:  fingerprint,
		RecordedAt:   time.Now().Unix(),
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lock state")
	}

	//nolint:gosec // Path is constructed from the trusted cache directory
	if err := os.WriteFile(d.statePath(absPath), data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write lock state")
	}
	return nil
}

func (d *Detector) loadState(manifestPath string) (lockState, bool) {
	absPath, err := filepath.Abs(manifestPath)
	if err != nil {
		return lockState{}, false
	}

	//nolint:gosec // Path is constructed from the trusted cache directory
	data, err := os.ReadFile(d.statePath(absPath))
	if err != nil {
		return lockState{}, false
	}

	var state lockState
	if err := json.Unmarshal(data, &state); err != nil {
		return lockState{}, false
	}
	return state, true
}

// statePath derives the sidecar file for a manifest from its absolute path.
func (d *Detector) statePath(absManifestPath string) string {
	sum := sha256.Sum256([]byte(absManifestPath))
	return filepath.Join(d.layout.LockStateDir(), hex.EncodeToString(sum[:])+".json")
}

// fingerprintFile computes a fast content fingerprint of the file.
func fingerprintFile(path string) (string, error) {
	//nolint:gosec // path is provided by user
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}

var _ ports.DriftDetector = (*Detector)(nil)
