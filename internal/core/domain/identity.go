package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"go.trai.ch/zerr"
)

// IdentityLength is the number of hex characters kept from the digest.
// Short enough to log and use as a directory name, long enough that
// collisions are negligible for the expected cache population.
const IdentityLength = 16

// ComputeIdentity derives the cache identity for an environment from the
// runtime version, the raw bytes of the authoritative file (lockfile when
// present, else manifest) and the host OS identifier. The inputs are fed to
// the digest in that fixed order; any change to any of them changes the
// identity.
func ComputeIdentity(python string, authoritative []byte, osID string) string {
	h := sha256.New()
	h.Write([]byte(python))
	h.Write(authoritative)
	h.Write([]byte(osID))
	return hex.EncodeToString(h.Sum(nil))[:IdentityLength]
}

// IdentityFromFile computes the identity for the authoritative file at path,
// returning the file's bytes alongside so callers can hand them to the cache
// without a second read.
func IdentityFromFile(path, python, osID string) (string, []byte, error) {
	//nolint:gosec // path is the project's manifest or lockfile
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, zerr.With(zerr.Wrap(ErrIdentityReadFailed, err.Error()), "path", path)
	}
	return ComputeIdentity(python, data, osID), data, nil
}
