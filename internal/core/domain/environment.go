package domain

import "path/filepath"

// Environment is a handle to a materialized environment in the holotree.
// Its directory existing with a valid completion marker is the only hit
// signal the cache maintains.
type Environment struct {
	Identity string
	Root     string
}

// VenvPath returns the runtime subtree of the environment.
func (e Environment) VenvPath() string {
	return filepath.Join(e.Root, VenvDirName)
}

// PythonPath returns the interpreter executable inside the environment.
func (e Environment) PythonPath() string {
	return filepath.Join(e.Root, PythonRelPath())
}

// MarkerPath returns the completion marker file of the environment.
func (e Environment) MarkerPath() string {
	return filepath.Join(e.Root, MarkerFileName)
}
