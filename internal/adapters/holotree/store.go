// Package holotree implements the content-addressed environment cache.
package holotree

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Store implements ports.Holotree.
//
// An environment directory only counts as a hit when it carries a valid
// completion marker, written as the very last build step. A directory
// without one is the leftover of an interrupted process and is rebuilt
// from scratch. A failed build removes its target directory entirely, so
// the next invocation sees a clean miss instead of a half-built runtime.
type Store struct {
	layout domain.Layout
	logger ports.Logger
}

// NewStore creates a Store over the layout's holotree root.
func NewStore(layout domain.Layout, logger ports.Logger) *Store {
	return &Store{
		layout: layout,
		logger: logger,
	}
}

// marker is the completion record written after a successful build.
type marker struct {
	Identity     string `json:"identity"`
	BuiltAt      int64  `json:"built_at"`
	SourceDigest string `json:"source_digest"`
}

// Root returns the cache root directory.
func (s *Store) Root() string {
	return s.layout.HolotreeRoot()
}

// Resolve returns the environment for the identity, building it on a miss.
func (s *Store) Resolve(ctx context.Context, identity string, authoritative []byte, build ports.BuildFunc) (domain.Environment, bool, error) {
	env := domain.Environment{
		Identity: identity,
		Root:     filepath.Join(s.Root(), identity),
	}

	if _, err := os.Stat(env.Root); err == nil {
		if s.markerValid(env) {
			return env, true, nil
		}
		s.logger.Warn("environment missing completion marker, rebuilding: " + identity)
		if err := os.RemoveAll(env.Root); err != nil {
			return domain.Environment{}, false, zerr.With(zerr.Wrap(err, "failed to remove incomplete environment"), "path", env.Root)
		}
	}

	if err := build(ctx, env.Root); err != nil {
		s.discard(env.Root)
		return domain.Environment{}, false, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "identity", identity)
	}

	if err := s.writeMarker(env, authoritative); err != nil {
		s.discard(env.Root)
		return domain.Environment{}, false, err
	}

	return env, false, nil
}

// discard removes a failed build's directory, best-effort. A secondary
// failure here is logged rather than escalated so it cannot mask the
// original build error.
func (s *Store) discard(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, "failed to clean up partial environment"), "path", dir))
	}
}

func (s *Store) writeMarker(env domain.Environment, authoritative []byte) error {
	m := marker{
		Identity:     env.Identity,
		BuiltAt:      time.Now().Unix(),
		SourceDigest: strconv.FormatUint(xxhash.Sum64(authoritative), 16),
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal completion marker")
	}
	//nolint:gosec // marker lives inside the environment directory we own
	if err := os.WriteFile(env.MarkerPath(), data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write completion marker"), "path", env.MarkerPath())
	}
	return nil
}

func (s *Store) markerValid(env domain.Environment) bool {
	//nolint:gosec // marker lives inside the environment directory we own
	data, err := os.ReadFile(env.MarkerPath())
	if err != nil {
		return false
	}
	var m marker
	if err := json.Unmarshal(data, &m); err != nil {
		return false
	}
	return m.Identity == env.Identity
}

// Clean destroys the entire cache root. Environment subtrees are removed
// concurrently; each holds a full runtime and the operation is disk-bound.
func (s *Store) Clean(ctx context.Context) error {
	root := s.Root()
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read holotree root"), "path", root)
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		g.Go(func() error {
			if err := os.RemoveAll(path); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to remove environment"), "path", path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := os.RemoveAll(root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove holotree root"), "path", root)
	}
	return nil
}

// Count returns the number of cached environments, for the clean prompt.
func (s *Store) Count() int {
	entries, err := os.ReadDir(s.Root())
	if err != nil {
		return 0
	}
	return len(entries)
}

var _ ports.Holotree = (*Store)(nil)
