package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

var (
	headerColor   = color.New(color.Bold, color.FgCyan)
	baselineColor = color.New(color.Bold)
	goodColor     = color.New(color.FgGreen)
	badColor      = color.New(color.FgRed)
	titleColor    = color.New(color.Bold, color.FgBlue)
)

type cell struct {
	text  string
	color *color.Color
	right bool
}

func plain(text string) cell { return cell{text: text} }
func num(text string) cell   { return cell{text: text, right: true} }

// signed colours positive values green and negative values red.
func signed(text string, v float64) cell {
	c := cell{text: text, right: true}
	switch {
	case v > 0:
		c.color = goodColor
	case v < 0:
		c.color = badColor
	}
	return c
}

// table pads on plain text so colour escapes never break alignment.
type table struct {
	headers []string
	rows    [][]cell
}

func (t *table) add(cells ...cell) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(c.text))
			}
		}
	}

	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = headerColor.Sprint(pad(h, widths[i], false))
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))

	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, c := range row {
			if i >= len(widths) {
				break
			}
			s := pad(c.text, widths[i], c.right)
			if c.color != nil {
				s = c.color.Sprint(s)
			}
			parts = append(parts, s)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}
}

func pad(s string, width int, right bool) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

func title(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, titleColor.Sprintf(format, args...))
}
