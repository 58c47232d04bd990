package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/fs"
	"github.com/fwojciec/pydocs/lipgloss"
)

// renderer returns the renderer selected by --output.
func (c *CLI) renderer(deps *Dependencies) pydocs.Renderer {
	switch c.Output {
	case pydocs.OutputPretty:
		return lipgloss.NewTableRenderer(deps.Stdout)
	case pydocs.OutputFile:
		opts := []fs.CSVOption{fs.WithLogger(deps.Logger)}
		if deps.Now != nil {
			opts = append(opts, fs.WithClock(deps.Now))
		}
		return fs.NewCSVWriter(c.Dir, opts...)
	default:
		return &plainRenderer{w: deps.Stdout}
	}
}

// plainRenderer prints each row with cells separated by spaces.
type plainRenderer struct {
	w io.Writer
}

func (r *plainRenderer) Render(ctx context.Context, mode string, t *pydocs.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	_, err := fmt.Fprint(r.w, t.String())
	return err
}
