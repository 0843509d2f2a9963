// Package render draws a table view as terminal text: a striped table on
// wide screens and stacked cards on narrow ones.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"hris/internal/table"
)

const (
	columnGap      = 2
	minColumnWidth = 4
	ellipsis       = "…"
)

const NoDataText = "No data available"

type Renderer struct {
	Theme Theme
	Width int
}

func New(width int) *Renderer {
	return &Renderer{Theme: DefaultTheme, Width: width}
}

func (r *Renderer) Render(v table.View) string {
	var b strings.Builder
	r.header(&b, v.Header)

	switch {
	case v.Skeleton != nil:
		r.skeleton(&b, *v.Skeleton)
	case v.NoData:
		b.WriteString(r.faint().Render(NoDataText))
		b.WriteByte('\n')
	case v.Layout == table.LayoutCards:
		r.cards(&b, v.Cards)
	default:
		r.rows(&b, v.Columns, v.Rows)
	}

	if v.SearchSummary != "" {
		b.WriteByte('\n')
		b.WriteString(r.faint().Render(v.SearchSummary))
		b.WriteByte('\n')
	}
	if v.Footer != nil {
		b.WriteByte('\n')
		b.WriteString(Footer(*v.Footer))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) header(b *strings.Builder, h table.Header) {
	if h.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(r.Theme.Title).Render(h.Title))
		b.WriteByte('\n')
	}
	if h.Description != "" {
		b.WriteString(r.faint().Render(r.fit(h.Description)))
		b.WriteByte('\n')
	}
	if h.ShowSearch {
		b.WriteString(r.faint().Render("Search: "))
		b.WriteString(h.Search)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func (r *Renderer) rows(b *strings.Builder, columns []string, rows []table.Row) {
	widths := r.columnWidths(columns, rows)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(r.Theme.Header)

	cells := make([]string, len(widths))
	for i := range widths {
		label := ""
		if i < len(columns) {
			label = columns[i]
		}
		cells[i] = headerStyle.Render(pad(label, widths[i]))
	}
	b.WriteString(strings.Join(cells, gap()))
	b.WriteByte('\n')
	b.WriteString(lipgloss.NewStyle().Foreground(r.Theme.Border).Render(strings.Repeat("─", totalWidth(widths))))
	b.WriteByte('\n')

	for n, row := range rows {
		cells = cells[:0]
		for i, w := range widths {
			var cell table.Cell
			if i < len(row.Cells) {
				cell = row.Cells[i]
			}
			cells = append(cells, r.cellStyle(cell).Render(pad(cell.Text, w)))
		}
		line := strings.Join(cells, gap())
		if n%2 == 1 {
			line = lipgloss.NewStyle().Background(r.Theme.ZebraStripe).Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func (r *Renderer) cards(b *strings.Builder, cards []table.Card) {
	labelStyle := lipgloss.NewStyle().Bold(true)
	border := lipgloss.NewStyle().Foreground(r.Theme.Border)
	for n, card := range cards {
		if n > 0 {
			b.WriteString(border.Render(strings.Repeat("─", r.lineWidth())))
			b.WriteByte('\n')
		}
		for _, field := range card.Fields {
			value := field.Cell.Text
			if field.Cell.Detail != "" {
				value += " (" + field.Cell.Detail + ")"
			}
			prefix := field.Label + ": "
			if field.Label == "" {
				prefix = ""
			}
			room := r.lineWidth() - ansi.StringWidth(prefix)
			b.WriteString(labelStyle.Render(prefix))
			b.WriteString(r.cellStyle(field.Cell).Render(truncate(value, room)))
			b.WriteByte('\n')
		}
	}
}

func (r *Renderer) skeleton(b *strings.Builder, s table.Skeleton) {
	if s.Columns == 0 {
		return
	}
	style := lipgloss.NewStyle().Foreground(r.Theme.Skeleton)
	w := max((r.lineWidth()-columnGap*(s.Columns-1))/s.Columns, 1)
	cells := make([]string, s.Columns)
	for i := range cells {
		cells[i] = strings.Repeat("░", w)
	}
	line := style.Render(strings.Join(cells, gap()))
	for range s.Rows {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// Footer renders the page-size selector and the pager on one line.
func Footer(f table.Footer) string {
	var parts []string
	if len(f.PageSizes) > 0 {
		sizes := make([]string, 0, len(f.PageSizes))
		for _, choice := range f.PageSizes {
			if choice.Selected {
				sizes = append(sizes, "["+choice.Label+"]")
				continue
			}
			sizes = append(sizes, choice.Label)
		}
		parts = append(parts, "Rows: "+strings.Join(sizes, " "))
	}
	if f.ShowPager {
		prev, next := "‹", "›"
		if !f.CanPrev {
			prev = " "
		}
		if !f.CanNext {
			next = " "
		}
		parts = append(parts, fmt.Sprintf("%s %d / %d %s", prev, f.CurrentPage, f.PageCount, next))
	}
	return strings.Join(parts, "   ")
}

func (r *Renderer) columnWidths(columns []string, rows []table.Row) []int {
	n := len(columns)
	for _, row := range rows {
		n = max(n, len(row.Cells))
	}
	widths := make([]int, n)
	for i, c := range columns {
		widths[i] = ansi.StringWidth(c)
	}
	for _, row := range rows {
		for i, cell := range row.Cells {
			widths[i] = max(widths[i], ansi.StringWidth(cell.Text))
		}
	}
	return shrink(widths, r.lineWidth())
}

// shrink narrows the widest columns until the row fits in limit or every
// column is at its minimum.
func shrink(widths []int, limit int) []int {
	for totalWidth(widths) > limit {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

func (r *Renderer) cellStyle(cell table.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if color, ok := r.Theme.ToneColor(cell.Tone); ok {
		style = style.Foreground(color)
	}
	return style
}

func (r *Renderer) faint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(r.Theme.FaintText)
}

func (r *Renderer) fit(s string) string {
	return truncate(s, r.lineWidth())
}

func (r *Renderer) lineWidth() int {
	if r.Width <= 0 {
		return 120
	}
	return r.Width
}

func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += columnGap * (len(widths) - 1)
	}
	return total
}

func gap() string { return strings.Repeat(" ", columnGap) }

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, ellipsis)
}

func pad(s string, width int) string {
	s = truncate(s, width)
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
