// Package fs resolves the on-disk layout for the current user.
package fs

import (
	"os"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveLayout builds the Layout from the user home directory. The home
// directory being undeterminable is fatal; nothing in the tool can proceed
// without the cask root.
func ResolveLayout() (domain.Layout, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return domain.Layout{}, zerr.Wrap(err, domain.ErrHomeNotFound.Error())
	}
	return domain.NewLayout(home), nil
}
