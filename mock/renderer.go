package mock

import (
	"context"

	"github.com/fwojciec/pydocs"
)

var _ pydocs.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of pydocs.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, mode string, t *pydocs.Table) error
}

func (r *Renderer) Render(ctx context.Context, mode string, t *pydocs.Table) error {
	return r.RenderFn(ctx, mode, t)
}
