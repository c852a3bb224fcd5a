package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// Table builds one operator-facing table on go-pretty and renders it in
// the Mode fixed at creation. The zero value is unusable; call NewTable.
type Table struct {
	writer table.Writer
	mode   Mode
	cols   map[int]table.ColumnConfig
}

// NewTable returns an empty table rendering in the given Mode.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &Table{writer: w, mode: m, cols: make(map[int]table.ColumnConfig)}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

// Row appends a data row. Values are stringified via fmt Sprint.
func (t *Table) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.writer.AppendRow(row)
}

// Footer appends a footer row, e.g. totals.
func (t *Table) Footer(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.writer.AppendFooter(row)
}

// RightAlign right-aligns the given 1-based columns. Numeric columns
// read better aligned on the decimal side.
func (t *Table) RightAlign(cols ...int) {
	for _, n := range cols {
		c := t.cols[n]
		c.Number = n
		c.Align = text.AlignRight
		t.cols[n] = c
	}
}

// MaxWidth wraps content in the given 1-based column beyond w runes.
func (t *Table) MaxWidth(col, w int) {
	c := t.cols[col]
	c.Number = col
	c.WidthMax = w
	t.cols[col] = c
}

// String renders the table in the configured Mode.
func (t *Table) String() string {
	if len(t.cols) > 0 {
		cfgs := make([]table.ColumnConfig, 0, len(t.cols))
		for _, c := range t.cols {
			cfgs = append(cfgs, c)
		}
		t.writer.SetColumnConfigs(cfgs)
	}
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}
	return t.writer.Render()
}
