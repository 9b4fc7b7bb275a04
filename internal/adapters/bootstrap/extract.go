package bootstrap

import (
	"archive/tar"
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxEngineBytes caps the extracted binary size (500 MB) to guard against
// decompression bombs in a tampered archive.
const maxEngineBytes = 500 << 20

// extractEngine scans the archive for entries whose base name matches
// wantName and writes the first match to destPath. All other archive
// members are ignored. Returns false when no entry matched.
func extractEngine(archivePath, ext, wantName, destPath string) (bool, error) {
	//nolint:gosec // archivePath is a temp file created by the locator
	f, err := os.Open(archivePath)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrEngineUnpackFailed.Error())
	}
	defer func() { _ = f.Close() }()

	if ext == "zip" {
		return extractFromZip(f, wantName, destPath)
	}
	return extractFromTarGz(f, wantName, destPath)
}

func extractFromZip(f *os.File, wantName, destPath string) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrEngineUnpackFailed.Error())
	}

	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrEngineUnpackFailed.Error())
	}

	for _, entry := range r.File {
		if filepath.Base(entry.Name) != wantName {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return false, zerr.Wrap(err, domain.ErrEngineUnpackFailed.Error())
		}
		err = writeBinary(destPath, rc)
		_ = rc.Close()
		if err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func extractFromTarGz(f *os.File, wantName, destPath string) (bool, error) {
	gz, err := gzip.NewReader(f)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrEngineUnpackFailed.Error())
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, zerr.Wrap(err, domain.ErrEngineUnpackFailed.Error())
		}
		if hdr.Typeflag != tar.TypeReg || filepath.Base(hdr.Name) != wantName {
			continue
		}
		if err := writeBinary(destPath, tr); err != nil {
			return false, err
		}
		return true, nil
	}
}

func writeBinary(destPath string, r io.Reader) error {
	//nolint:gosec // destPath lives under the cask bin directory
	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.Wrap(err, domain.ErrEngineUnpackFailed.Error())
	}

	_, err = io.Copy(out, io.LimitReader(r, maxEngineBytes))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return zerr.Wrap(err, domain.ErrEngineUnpackFailed.Error())
	}
	return nil
}
