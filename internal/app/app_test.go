package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cask/internal/adapters/logger"
	"go.trai.ch/cask/internal/adapters/telemetry"
	"go.trai.ch/cask/internal/app"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports/mocks"
	"go.trai.ch/cask/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type harness struct {
	app      *app.App
	loader   *mocks.MockBlueprintLoader
	drift    *mocks.MockDriftDetector
	engine   *mocks.MockEngine
	holotree *mocks.MockHolotree
	runner   *mocks.MockPayloadRunner
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		loader:   mocks.NewMockBlueprintLoader(ctrl),
		drift:    mocks.NewMockDriftDetector(ctrl),
		engine:   mocks.NewMockEngine(ctrl),
		holotree: mocks.NewMockHolotree(ctrl),
		runner:   mocks.NewMockPayloadRunner(ctrl),
	}
	log := logger.New()
	h.app = app.New(
		h.loader,
		h.drift,
		h.engine,
		h.holotree,
		pipeline.NewBuilder(h.engine, log),
		h.runner,
		log,
		telemetry.NewNoop(),
	)
	return h
}

func writeProject(t *testing.T, manifest string) (manifestPath, lockPath string) {
	t.Helper()
	dir := t.TempDir()
	manifestPath = filepath.Join(dir, domain.ManifestFileName)
	lockPath = filepath.Join(dir, domain.LockFileName)
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o600))
	return manifestPath, lockPath
}

func TestRun_LooseMode(t *testing.T) {
	h := newHarness(t)
	manifestPath, lockPath := writeProject(t, "dependencies: [requests]\n")

	blueprint := &domain.Blueprint{Python: "3.11", Dependencies: []string{"requests"}}
	h.loader.EXPECT().Load(manifestPath).Return(blueprint, nil)
	h.drift.EXPECT().Check(manifestPath, lockPath).Return(domain.LooseMode, nil)

	manifestBytes, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	wantIdentity := domain.ComputeIdentity("3.11", manifestBytes, runtime.GOOS)

	env := domain.Environment{Identity: wantIdentity, Root: t.TempDir()}
	h.holotree.EXPECT().
		Resolve(gomock.Any(), wantIdentity, manifestBytes, gomock.Any()).
		Return(env, false, nil)
	h.runner.EXPECT().
		Run(gomock.Any(), env, []string{"robot.py"}, filepath.Dir(manifestPath)).
		Return(nil)

	require.NoError(t, h.app.Run(context.Background(), manifestPath, []string{"robot.py"}))
}

func TestRun_LockAuthoritative(t *testing.T) {
	h := newHarness(t)
	manifestPath, lockPath := writeProject(t, "dependencies: [requests]\n")
	require.NoError(t, os.WriteFile(lockPath, []byte("requests==2.31.0\n"), 0o600))

	blueprint := &domain.Blueprint{Python: "3.11", Dependencies: []string{"requests"}}
	h.loader.EXPECT().Load(manifestPath).Return(blueprint, nil)
	h.drift.EXPECT().Check(manifestPath, lockPath).Return(domain.LockAuthoritative, nil)

	lockBytes := []byte("requests==2.31.0\n")
	wantIdentity := domain.ComputeIdentity("3.11", lockBytes, runtime.GOOS)

	env := domain.Environment{Identity: wantIdentity, Root: t.TempDir()}
	h.holotree.EXPECT().
		Resolve(gomock.Any(), wantIdentity, lockBytes, gomock.Any()).
		Return(env, true, nil)
	h.runner.EXPECT().
		Run(gomock.Any(), env, []string{"robot.py"}, filepath.Dir(manifestPath)).
		Return(nil)

	require.NoError(t, h.app.Run(context.Background(), manifestPath, []string{"robot.py"}))
}

func TestRun_StaleLockTriggersRelock(t *testing.T) {
	h := newHarness(t)
	manifestPath, lockPath := writeProject(t, "dependencies: [requests, rich]\n")
	require.NoError(t, os.WriteFile(lockPath, []byte("requests==2.31.0\n"), 0o600))

	blueprint := &domain.Blueprint{Python: "3.11", Dependencies: []string{"requests", "rich"}}
	h.loader.EXPECT().Load(manifestPath).Return(blueprint, nil)
	h.drift.EXPECT().Check(manifestPath, lockPath).Return(domain.LockStale, nil)

	relocked := []byte("requests==2.31.0\nrich==13.7.0\n")
	h.engine.EXPECT().
		Compile(gomock.Any(), gomock.Any(), lockPath, "3.11").
		DoAndReturn(func(_ context.Context, reqsPath, outPath, _ string) error {
			content, err := os.ReadFile(reqsPath)
			require.NoError(t, err)
			assert.Equal(t, "requests\nrich", string(content))
			return os.WriteFile(outPath, relocked, 0o600)
		})
	h.drift.EXPECT().RecordFingerprint(manifestPath).Return(nil)

	wantIdentity := domain.ComputeIdentity("3.11", relocked, runtime.GOOS)
	env := domain.Environment{Identity: wantIdentity, Root: t.TempDir()}
	h.holotree.EXPECT().
		Resolve(gomock.Any(), wantIdentity, relocked, gomock.Any()).
		Return(env, false, nil)
	h.runner.EXPECT().
		Run(gomock.Any(), env, gomock.Any(), filepath.Dir(manifestPath)).
		Return(nil)

	require.NoError(t, h.app.Run(context.Background(), manifestPath, []string{"robot.py"}))
}

func TestRun_BuildFailurePropagatesWithoutLaunch(t *testing.T) {
	h := newHarness(t)
	manifestPath, lockPath := writeProject(t, "dependencies: [requests]\n")

	blueprint := &domain.Blueprint{Python: "3.11", Dependencies: []string{"requests"}}
	h.loader.EXPECT().Load(manifestPath).Return(blueprint, nil)
	h.drift.EXPECT().Check(manifestPath, lockPath).Return(domain.LooseMode, nil)

	buildErr := errors.New("install exploded")
	h.holotree.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Environment{}, false, buildErr)

	err := h.app.Run(context.Background(), manifestPath, []string{"robot.py"})
	require.ErrorIs(t, err, buildErr)
}

func TestRun_LoadFailureShortCircuits(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("cask.yaml").Return(nil, domain.ErrManifestNotFound)

	err := h.app.Run(context.Background(), "cask.yaml", []string{"robot.py"})
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestLock_CompilesAndRecordsFingerprint(t *testing.T) {
	h := newHarness(t)
	manifestPath, lockPath := writeProject(t, "dependencies: [requests]\n")

	blueprint := &domain.Blueprint{Python: "3.10", Dependencies: []string{"requests"}}
	h.loader.EXPECT().Load(manifestPath).Return(blueprint, nil)
	h.engine.EXPECT().Compile(gomock.Any(), gomock.Any(), lockPath, "3.10").Return(nil)
	h.drift.EXPECT().RecordFingerprint(manifestPath).Return(nil)

	require.NoError(t, h.app.Lock(context.Background(), manifestPath))
}

func TestLock_CompileFailureSkipsFingerprint(t *testing.T) {
	h := newHarness(t)
	manifestPath, lockPath := writeProject(t, "dependencies: [requests]\n")

	blueprint := &domain.Blueprint{Python: "3.10", Dependencies: []string{"requests"}}
	h.loader.EXPECT().Load(manifestPath).Return(blueprint, nil)
	h.engine.EXPECT().
		Compile(gomock.Any(), gomock.Any(), lockPath, "3.10").
		Return(domain.ErrLockFailed)

	err := h.app.Lock(context.Background(), manifestPath)
	require.ErrorIs(t, err, domain.ErrLockFailed)
}

func TestInit_ScaffoldsProject(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()

	require.NoError(t, h.app.Init(dir, "invoice-bot"))

	manifest, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `"invoice-bot"`)
	assert.FileExists(t, filepath.Join(dir, "robot.py"))
}

func TestInit_NameDefaultsToDirectory(t *testing.T) {
	h := newHarness(t)
	dir := filepath.Join(t.TempDir(), "warehouse-sync")
	require.NoError(t, os.MkdirAll(dir, 0o750))

	require.NoError(t, h.app.Init(dir, ""))

	manifest, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `"warehouse-sync"`)
}

func TestInit_ExistingManifestFails(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte("dependencies: []\n"), 0o600))

	err := h.app.Init(dir, "again")
	require.ErrorIs(t, err, domain.ErrManifestExists)
}

func TestInit_KeepsExistingPayload(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	payloadPath := filepath.Join(dir, "robot.py")
	require.NoError(t, os.WriteFile(payloadPath, []byte("print('mine')\n"), 0o600))

	require.NoError(t, h.app.Init(dir, "bot"))

	content, err := os.ReadFile(payloadPath)
	require.NoError(t, err)
	assert.Equal(t, "print('mine')\n", string(content))
}

func TestClean_DelegatesToCache(t *testing.T) {
	h := newHarness(t)

	h.holotree.EXPECT().Root().Return("/home/user/.cask/holotree")
	h.holotree.EXPECT().Clean(gomock.Any()).Return(nil)

	require.NoError(t, h.app.Clean(context.Background()))
}
