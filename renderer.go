package pydocs

import "context"

// Output destinations a table can be rendered to.
const (
	OutputPlain  = "plain"
	OutputPretty = "pretty"
	OutputFile   = "file"
)

// Renderer presents a result table. Renderers must not modify the table.
type Renderer interface {
	Render(ctx context.Context, mode string, t *Table) error
}
