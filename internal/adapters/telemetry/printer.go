package telemetry

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
)

// Printer is a progrock.Writer that renders vertex transitions as linear,
// chronological lines. It is the output path for non-TUI invocations, which
// for a short-lived CLI is every invocation.
type Printer struct {
	out    io.Writer
	colors *termenv.Output

	mu   sync.Mutex
	seen map[string]bool
}

// NewPrinter creates a Printer writing to w, defaulting to stderr.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	return &Printer{
		out:    w,
		colors: termenv.NewOutput(w, termenv.WithProfile(colorProfile())),
		seen:   make(map[string]bool),
	}
}

func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// WriteStatus renders newly completed vertices.
func (p *Printer) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil || p.seen[v.Id] {
			continue
		}
		p.seen[v.Id] = true

		switch {
		case v.Error != nil:
			mark := p.colors.String("✗").Foreground(p.colors.Color("1"))
			fmt.Fprintf(p.out, "%s %s: %s\n", mark, v.Name, *v.Error)
		case v.Cached:
			mark := p.colors.String("⚡").Foreground(p.colors.Color("3"))
			fmt.Fprintf(p.out, "%s %s (cached)\n", mark, v.Name)
		default:
			mark := p.colors.String("✓").Foreground(p.colors.Color("2"))
			fmt.Fprintf(p.out, "%s %s\n", mark, v.Name)
		}
	}
	return nil
}

// Close is a no-op; the printer holds no buffered state.
func (p *Printer) Close() error {
	return nil
}
