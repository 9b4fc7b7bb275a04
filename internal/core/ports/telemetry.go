package ports

import (
	"context"
	"io"
)

// Tracer is the entry point for recording units of work (downloads, build
// steps, payload runs) for progress display.
type Tracer interface {
	// Start begins recording a span with the given name.
	Start(ctx context.Context, name string) (context.Context, Span)

	// Close flushes the recording session.
	Close() error
}

// Span represents one unit of work. Writes go to the span's output stream.
type Span interface {
	io.Writer

	// Cached marks the span as satisfied from cache.
	Cached()

	// End completes the span, recording err when non-nil.
	End(err error)
}
