package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom, splitting the height evenly.
type VStack struct {
	Widgets []Widget
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := evenSplit(height, len(v.Widgets))
	rows := make([]string, 0, len(v.Widgets))
	for i, w := range v.Widgets {
		rows = append(rows, w.Render(width, max(1, heights[i])))
	}
	return strings.Join(rows, "\n")
}

// HStack places widgets side by side with Gap columns between them.
type HStack struct {
	Widgets []Widget
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gap := strings.Repeat(" ", max(0, h.Gap))
	widths := evenSplit(max(1, width-len(gap)*(len(h.Widgets)-1)), len(h.Widgets))
	cols := make([][]string, len(h.Widgets))
	rows := 0
	for i, w := range h.Widgets {
		cols[i] = strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rows = max(rows, len(cols[i]))
	}
	out := make([]string, rows)
	for r := range out {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cell := ""
			if r < len(col) {
				cell = col[r]
			}
			cells[i] = padRight(cell, widths[i])
		}
		out[r] = strings.Join(cells, gap)
	}
	return strings.Join(out, "\n")
}

// evenSplit divides total into n parts, giving the remainder to the first ones.
func evenSplit(total, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = total / n
		if i < total%n {
			out[i]++
		}
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
