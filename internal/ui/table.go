package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Cell is one styled table cell
type Cell struct {
	Text  string
	Style lipgloss.Style
}

// Column describes a table column. Width 0 sizes the column to its widest cell.
type Column struct {
	Header string
	Width  int
}

// Table is a box-drawn table
type Table struct {
	Columns []Column
	Rows    [][]Cell
}

// AddRow appends a row; missing cells render empty
func (t *Table) AddRow(cells ...Cell) {
	t.Rows = append(t.Rows, cells)
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		if c.Width > 0 {
			widths[i] = c.Width
			continue
		}
		widths[i] = runewidth.StringWidth(c.Header)
		for _, row := range t.Rows {
			if i < len(row) {
				if w := runewidth.StringWidth(row[i].Text); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

// Render writes the table to w
func (t *Table) Render(w io.Writer) error {
	widths := t.widths()
	var sb strings.Builder

	border := func(left, mid, right string) {
		sb.WriteString(BorderStyle.Render(left))
		for i, cw := range widths {
			sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, cw+2)))
			if i < len(widths)-1 {
				sb.WriteString(BorderStyle.Render(mid))
			}
		}
		sb.WriteString(BorderStyle.Render(right))
		sb.WriteString("\n")
	}

	border(TopLeft, TopT, TopRight)

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, c := range t.Columns {
		sb.WriteString(HeaderStyle.Render(" " + padRight(c.Header, widths[i]) + " "))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	border(LeftT, Cross, RightT)

	// Data rows
	for _, row := range t.Rows {
		sb.WriteString(BorderStyle.Render(Vertical))
		for i := range t.Columns {
			cell := Cell{Style: MutedStyle}
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(cell.Style.Render(" " + padRight(cell.Text, widths[i]) + " "))
			sb.WriteString(BorderStyle.Render(Vertical))
		}
		sb.WriteString("\n")
	}

	border(BottomLeft, BottomT, BottomRight)

	_, err := io.WriteString(w, sb.String())
	return err
}

// detail is a label/value line of a details box
type detail struct {
	label string
	value string
}

// renderDetails writes a titled box of label/value lines
func renderDetails(w io.Writer, title string, details []detail) error {
	var sb strings.Builder
	labelWidth := 20

	// Calculate width based on longest value (using display width)
	width := minWidth
	for _, d := range details {
		lineLen := 1 + labelWidth + runewidth.StringWidth(d.value) + 1
		if lineLen > width {
			width = lineLen
		}
	}

	rule := func(left, right string) {
		sb.WriteString(BorderStyle.Render(left))
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, width)))
		sb.WriteString(BorderStyle.Render(right))
		sb.WriteString("\n")
	}

	rule(TopLeft, TopRight)

	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(HeaderStyle.Render(padRight(" "+title, width)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	rule(LeftT, RightT)

	for _, d := range details {
		sb.WriteString(BorderStyle.Render(Vertical))
		line := " " + padRight(d.label, labelWidth) + d.value
		if lw := runewidth.StringWidth(line); lw < width {
			line += strings.Repeat(" ", width-lw)
		}
		sb.WriteString(line)
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	rule(BottomLeft, BottomRight)

	_, err := io.WriteString(w, sb.String())
	return err
}
