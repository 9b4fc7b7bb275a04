package runner

import (
	"fmt"
	"strings"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseEnvFile parses dotenv-format content into env. Later declarations of
// the same key override earlier ones. A malformed line is a hard error, not
// skipped: silently dropping a secret the payload expects would fail in a
// far less obvious way later.
//
// Supported format: `# comment`, blank lines, optional `export ` prefix,
// KEY=value with optional single or double quotes around the value.
func parseEnvFile(env map[string]string, content []byte, filename string) error {
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, found := strings.Cut(line, "=")
		if !found {
			return zerr.With(
				zerr.Wrap(domain.ErrEnvFileInvalid, fmt.Sprintf("missing '=' on line %d", i+1)),
				"file", filename)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return zerr.With(
				zerr.Wrap(domain.ErrEnvFileInvalid, fmt.Sprintf("empty variable name on line %d", i+1)),
				"file", filename)
		}

		env[key] = unquote(strings.TrimSpace(value))
	}
	return nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
