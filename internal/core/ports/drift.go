package ports

import "go.trai.ch/cask/internal/core/domain"

// DriftDetector decides whether a lockfile is stale relative to its manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=drift.go -destination=mocks/mock_drift.go -package=mocks
type DriftDetector interface {
	// Check compares the manifest against the sibling lockfile and returns
	// the drift decision.
	Check(manifestPath, lockPath string) (domain.DriftDecision, error)

	// RecordFingerprint stores a content fingerprint of the manifest,
	// called after a successful lock so an mtime-only touch does not
	// trigger a spurious re-lock.
	RecordFingerprint(manifestPath string) error
}
