package prompt

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"

	"github.com/myyachtvalue/modelsvc/internal/service/cli/render"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/streams"
)

// Verify interface compliance in compile time.
var _ render.Renderer = (*Renderer)(nil)

// Renderer type is implementation of renderer for terminal and plain outputs.
type Renderer struct {
	useTTY bool
	out    *streams.Out
}

// NewRenderer creates Renderer that animates a spinner in TTY mode and prints plain titles to out otherwise.
func NewRenderer(out *streams.Out, useTTY bool) *Renderer {
	return &Renderer{
		useTTY: useTTY,
		out:    out,
	}
}

// WithSpinner starts spinner while function is running.
func (r *Renderer) WithSpinner(title string, fn func()) {
	if r.useTTY {
		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			defer cancel()
			fn()
		}()

		_ = spinner.New().
			Title(title).
			Context(ctx).
			Run()

		return
	}

	_, _ = fmt.Fprintln(r.out, title)

	fn()
}
