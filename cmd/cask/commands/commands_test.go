package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cask/cmd/cask/commands"
)

// fakeApp records which operation was invoked and with what arguments.
type fakeApp struct {
	ranManifest string
	ranArgs     []string
	lockedPath  string
	initDir     string
	initName    string
	cleaned     bool
	err         error
}

func (f *fakeApp) Run(_ context.Context, manifestPath string, argv []string) error {
	f.ranManifest = manifestPath
	f.ranArgs = argv
	return f.err
}

func (f *fakeApp) Lock(_ context.Context, manifestPath string) error {
	f.lockedPath = manifestPath
	return f.err
}

func (f *fakeApp) Init(dir, name string) error {
	f.initDir = dir
	f.initName = name
	return f.err
}

func (f *fakeApp) Clean(context.Context) error {
	f.cleaned = true
	return f.err
}

func (f *fakeApp) CacheRoot() string {
	return "/home/user/.cask/holotree"
}

func execute(t *testing.T, app commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(app)
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestRunCmd_PassesArgsThrough(t *testing.T) {
	app := &fakeApp{}

	_, err := execute(t, app, "run", "--", "-m", "robocorp.tasks", "run", "robot.py")
	require.NoError(t, err)

	assert.Equal(t, "cask.yaml", app.ranManifest)
	assert.Equal(t, []string{"-m", "robocorp.tasks", "run", "robot.py"}, app.ranArgs)
}

func TestRunCmd_CustomConfig(t *testing.T) {
	app := &fakeApp{}

	_, err := execute(t, app, "run", "--config", "sub/cask.yaml", "--", "robot.py")
	require.NoError(t, err)
	assert.Equal(t, "sub/cask.yaml", app.ranManifest)
}

func TestRunCmd_NoArgsShowsHelp(t *testing.T) {
	app := &fakeApp{}

	out, err := execute(t, app, "run")
	require.NoError(t, err)
	assert.Empty(t, app.ranArgs)
	assert.Contains(t, out, "Usage")
}

func TestLockCmd(t *testing.T) {
	app := &fakeApp{}

	_, err := execute(t, app, "lock")
	require.NoError(t, err)
	assert.Equal(t, "cask.yaml", app.lockedPath)
}

func TestInitCmd_WithName(t *testing.T) {
	app := &fakeApp{}

	_, err := execute(t, app, "init", "--name", "invoice-bot")
	require.NoError(t, err)
	assert.Equal(t, "invoice-bot", app.initName)
	assert.NotEmpty(t, app.initDir)
}

func TestCleanCmd_Force(t *testing.T) {
	app := &fakeApp{}

	_, err := execute(t, app, "clean", "--force")
	require.NoError(t, err)
	assert.True(t, app.cleaned)
}

func TestVersionCmd(t *testing.T) {
	app := &fakeApp{}

	out, err := execute(t, app, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cask version")
}

func TestErrorsPropagate(t *testing.T) {
	wantErr := errors.New("payload exited non-zero")
	app := &fakeApp{err: wantErr}

	_, err := execute(t, app, "run", "--", "robot.py")
	require.ErrorIs(t, err, wantErr)
}
