package domain

import "strings"

// Blueprint is the parsed project manifest. Dependency order and duplicates
// are preserved exactly as authored, since they flow verbatim into the
// install manifest handed to the engine.
type Blueprint struct {
	Name         string
	Description  string
	Python       string
	Dependencies []string
}

// Requirements renders the dependency list as a line-delimited install
// manifest in the engine's native requirements format.
func (b *Blueprint) Requirements() string {
	return strings.Join(b.Dependencies, "\n")
}
