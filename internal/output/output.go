// Package output writes command results.
//
// Results (configs, drafts, tables, JSON, YAML) go to the Printer, which
// wraps stdout. Warnings and verbose logging go through the log package on
// stderr, so `toggl draft --json | jq` only ever sees data.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes command results. The first write error is kept and
// reported by Err; later writes are skipped.
type Printer struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter stores a Printer for w in ctx.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext returns the stored Printer, or one on os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Print(a ...any) {
	p.write(func() (int, error) { return fmt.Fprint(p.w, a...) })
}

func (p *Printer) Printf(format string, a ...any) {
	p.write(func() (int, error) { return fmt.Fprintf(p.w, format, a...) })
}

func (p *Printer) Println(a ...any) {
	p.write(func() (int, error) { return fmt.Fprintln(p.w, a...) })
}

func (p *Printer) write(fn func() (int, error)) {
	if p.err != nil {
		return
	}
	if _, err := fn(); err != nil {
		p.err = err
	}
}

// Err returns the first write error, e.g. a closed pipe.
func (p *Printer) Err() error {
	return p.err
}

// Writer returns the underlying writer, for code that renders on its own
// (doctor reports, completion scripts).
func (p *Printer) Writer() io.Writer {
	return p.w
}
