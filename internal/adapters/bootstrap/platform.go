package bootstrap

import (
	"fmt"
	"runtime"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/zerr"
)

// EngineVersion is the pinned engine release fetched on first use.
const EngineVersion = "0.9.28"

// defaultBaseURL is the release download location for the engine.
const defaultBaseURL = "https://github.com/astral-sh/uv/releases/download"

// platform identifies a release asset: target triple plus archive format.
// Windows releases ship as zip because the platform has no native tar;
// everything else ships as tar.gz.
type platform struct {
	os   string
	arch string
	ext  string
}

// detectPlatform maps the host OS and CPU architecture onto a release
// triple. It fails before any network I/O for unsupported combinations.
func detectPlatform() (platform, error) {
	var p platform

	switch runtime.GOOS {
	case "linux":
		p.os, p.ext = "unknown-linux-gnu", "tar.gz"
	case "darwin":
		p.os, p.ext = "apple-darwin", "tar.gz"
	case "windows":
		p.os, p.ext = "pc-windows-msvc", "zip"
	default:
		return platform{}, zerr.With(domain.ErrUnsupportedPlatform, "os", runtime.GOOS)
	}

	switch runtime.GOARCH {
	case "amd64":
		p.arch = "x86_64"
	case "arm64":
		p.arch = "aarch64"
	default:
		return platform{}, zerr.With(domain.ErrUnsupportedPlatform, "arch", runtime.GOARCH)
	}

	return p, nil
}

// assetName returns the release archive filename for this platform.
func (p platform) assetName() string {
	return fmt.Sprintf("uv-%s-%s.%s", p.arch, p.os, p.ext)
}

// downloadURL returns the full archive URL for the given release version.
func (p platform) downloadURL(baseURL, version string) string {
	return fmt.Sprintf("%s/%s/%s", baseURL, version, p.assetName())
}
