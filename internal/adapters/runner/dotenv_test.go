package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cask/internal/core/domain"
)

func TestParseEnvFile_Basic(t *testing.T) {
	env := map[string]string{}
	content := []byte(`
# credentials for the portal
API_KEY=secret123
export REGION=eu-west-1
QUOTED="hello world"
SINGLE='keep me'
EMPTY=
`)
	require.NoError(t, parseEnvFile(env, content, ".env"))

	assert.Equal(t, "secret123", env["API_KEY"])
	assert.Equal(t, "eu-west-1", env["REGION"])
	assert.Equal(t, "hello world", env["QUOTED"])
	assert.Equal(t, "keep me", env["SINGLE"])
	assert.Equal(t, "", env["EMPTY"])
}

func TestParseEnvFile_LaterDeclarationWins(t *testing.T) {
	env := map[string]string{"API_KEY": "inherited"}
	content := []byte("API_KEY=first\nAPI_KEY=second\n")

	require.NoError(t, parseEnvFile(env, content, ".env"))
	assert.Equal(t, "second", env["API_KEY"])
}

func TestParseEnvFile_MalformedLineIsFatal(t *testing.T) {
	env := map[string]string{}
	content := []byte("GOOD=1\nthis line has no equals sign\n")

	err := parseEnvFile(env, content, ".env")
	require.ErrorIs(t, err, domain.ErrEnvFileInvalid)
}

func TestParseEnvFile_EmptyKeyIsFatal(t *testing.T) {
	env := map[string]string{}
	err := parseEnvFile(env, []byte("=value\n"), ".env")
	require.ErrorIs(t, err, domain.ErrEnvFileInvalid)
}

func TestParseEnvFile_ValueMayContainEquals(t *testing.T) {
	env := map[string]string{}
	require.NoError(t, parseEnvFile(env, []byte("DSN=postgres://u:p@host/db?sslmode=disable\n"), ".env"))
	assert.Equal(t, "postgres://u:p@host/db?sslmode=disable", env["DSN"])
}

func TestParseEnvFile_CRLF(t *testing.T) {
	env := map[string]string{}
	require.NoError(t, parseEnvFile(env, []byte("A=1\r\nB=2\r\n"), ".env"))
	assert.Equal(t, "1", env["A"])
	assert.Equal(t, "2", env["B"])
}
