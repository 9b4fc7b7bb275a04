// Package bootstrap lazily provisions the external engine binary.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"go.trai.ch/cask/internal/core/domain"
	"go.trai.ch/cask/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator implements ports.EngineLocator.
//
// Presence of the binary at the well-known path is trusted as-is; no
// version or integrity check is performed on the fast path. The slow path
// downloads the pinned release archive, extracts only the engine binary to
// a temporary name and renames it into place on full success, so an
// interrupted bootstrap never leaves a half-written binary at the final
// path.
type Locator struct {
	layout  domain.Layout
	baseURL string
	client  *http.Client
	tracer  ports.Tracer
	logger  ports.Logger
}

// NewLocator creates a Locator for the given layout.
func NewLocator(layout domain.Layout, tracer ports.Tracer, logger ports.Logger) *Locator {
	return &Locator{
		layout:  layout,
		baseURL: defaultBaseURL,
		client:  &http.Client{},
		tracer:  tracer,
		logger:  logger,
	}
}

// NewLocatorWithClient creates a Locator with a custom base URL and HTTP
// client. Used for testing against a local server.
func NewLocatorWithClient(layout domain.Layout, baseURL string, client *http.Client, tracer ports.Tracer, logger ports.Logger) *Locator {
	return &Locator{
		layout:  layout,
		baseURL: baseURL,
		client:  client,
		tracer:  tracer,
		logger:  logger,
	}
}

// Ensure returns the engine path, bootstrapping the binary on first use.
func (l *Locator) Ensure(ctx context.Context) (string, error) {
	enginePath := l.layout.EnginePath()
	if _, err := os.Stat(enginePath); err == nil {
		return enginePath, nil
	}

	// Platform support is decided before any network or filesystem work.
	plat, err := detectPlatform()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(l.layout.BinDir(), domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, "failed to create engine directory")
	}

	l.logger.Info("engine missing, bootstrapping cask")

	_, span := l.tracer.Start(ctx, "bootstrap engine "+EngineVersion)
	err = l.downloadAndUnpack(ctx, plat, span)
	span.End(err)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(enginePath); err != nil {
		return "", zerr.With(domain.ErrEngineMissing, "path", enginePath)
	}
	return enginePath, nil
}

func (l *Locator) downloadAndUnpack(ctx context.Context, plat platform, span ports.Span) error {
	url := plat.downloadURL(l.baseURL, EngineVersion)
	fmt.Fprintf(span, "downloading %s\n", url)

	archivePath, err := l.download(ctx, url, span)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(archivePath) }()

	binaryName := domain.EngineBinaryName()
	partialPath := l.layout.EnginePath() + ".partial"

	found, err := extractEngine(archivePath, plat.ext, binaryName, partialPath)
	if err != nil {
		_ = os.Remove(partialPath)
		return err
	}
	if !found {
		return zerr.With(domain.ErrEngineMissing, "archive", plat.assetName())
	}

	// Archives do not reliably preserve the executable bit.
	if runtime.GOOS != "windows" {
		if err := os.Chmod(partialPath, domain.ExecPerm); err != nil {
			_ = os.Remove(partialPath)
			return zerr.Wrap(err, "failed to mark engine executable")
		}
	}

	if err := os.Rename(partialPath, l.layout.EnginePath()); err != nil {
		_ = os.Remove(partialPath)
		return zerr.Wrap(err, "failed to move engine into place")
	}
	return nil
}

// download streams the archive to a temporary file, reporting progress on
// the span. There is no retry; a transfer failure is surfaced for the user
// to retry manually.
func (l *Locator) download(ctx context.Context, url string, span ports.Span) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrEngineDownloadFailed.Error()), "url", url)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrEngineDownloadFailed.Error()), "url", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", zerr.With(zerr.With(domain.ErrEngineDownloadFailed, "url", url), "status", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "cask-engine-*")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrEngineDownloadFailed.Error())
	}

	err = copyWithProgress(tmp, resp.Body, resp.ContentLength, span)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", zerr.With(zerr.Wrap(err, domain.ErrEngineDownloadFailed.Error()), "url", url)
	}
	return tmp.Name(), nil
}

// copyWithProgress copies body to w, writing a progress line to the span
// for roughly every 4 MB transferred. total may be negative when the
// content length is unknown, in which case progress is indeterminate.
func copyWithProgress(w io.Writer, body io.Reader, total int64, span ports.Span) error {
	const reportEvery = 4 << 20

	var done, lastReport int64
	buf := make([]byte, 32<<10)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
			done += int64(n)
			if done-lastReport >= reportEvery {
				lastReport = done
				reportProgress(span, done, total)
			}
		}
		if err == io.EOF {
			reportProgress(span, done, total)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func reportProgress(span ports.Span, done, total int64) {
	if total > 0 {
		fmt.Fprintf(span, "%.1f / %.1f MB\n", mb(done), mb(total))
		return
	}
	fmt.Fprintf(span, "%.1f MB\n", mb(done))
}

func mb(n int64) float64 {
	return float64(n) / (1 << 20)
}

var _ ports.EngineLocator = (*Locator)(nil)
