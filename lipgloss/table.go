// Package lipgloss renders pydocs result tables for the terminal using
// lipgloss tables.
package lipgloss

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/pydocs"
)

var (
	colorDim  = lipgloss.Color("240")
	colorGray = lipgloss.Color("245")
)

// Ensure TableRenderer implements pydocs.Renderer at compile time.
var _ pydocs.Renderer = (*TableRenderer)(nil)

// TableRenderer draws a bordered, left-aligned table.
type TableRenderer struct {
	w io.Writer
}

// NewTableRenderer creates a TableRenderer writing to w.
func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{w: w}
}

// Render writes t to the underlying writer.
func (r *TableRenderer) Render(ctx context.Context, mode string, t *pydocs.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w, Format(t))
	return err
}

// Format returns t drawn as a table with a rounded border.
func Format(t *pydocs.Table) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Left)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(t.Header...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}
