package domain

// DriftDecision is the outcome of comparing a manifest against its lockfile.
type DriftDecision int

const (
	// LooseMode means no lockfile exists; the manifest is authoritative.
	LooseMode DriftDecision = iota

	// LockAuthoritative means the lockfile exists and is current.
	LockAuthoritative

	// LockStale means the manifest changed after the lockfile was generated
	// and a re-lock is required before proceeding.
	LockStale
)

// String returns a human-readable name for the decision.
func (d DriftDecision) String() string {
	switch d {
	case LooseMode:
		return "loose"
	case LockAuthoritative:
		return "locked"
	case LockStale:
		return "stale"
	default:
		return "unknown"
	}
}
