// Package table draws reviews as a bordered text table for the terminal.
// Long cells wrap onto extra lines inside their column rather than being cut off.
package table

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/gaqzi/park-reviewer/internal/reviewing"
)

const (
	colID = iota
	colRating
	colMonth
	colLocation
	colText
	colBranch
	columns
)

// DefaultTextWidth is the widest the review text column gets before wrapping.
const DefaultTextWidth = 50

var headers = [columns]string{"Review_ID", "Rating", "Review_Month", "Reviewer_Location", "Review_Text", "Branch"}

// Widths is the display width of each column's content, without padding.
type Widths [columns]int

func cells(r reviewing.Review) [columns]string {
	return [columns]string{
		strconv.FormatInt(r.ID, 10),
		strconv.Itoa(r.Rating),
		r.Month,
		r.Location,
		r.Text,
		r.Branch,
	}
}

// ComputeColumnWidths fits each column to its header and its widest cell. The review
// text column stops growing at textWidth, and is never narrower than its header.
func ComputeColumnWidths(reviews reviewing.Reviews, textWidth int) Widths {
	var w Widths
	for i, h := range headers {
		w[i] = ansi.StringWidth(h)
	}

	for _, r := range reviews {
		for i, cell := range cells(r) {
			for _, line := range strings.Split(cell, "\n") {
				w[i] = max(w[i], ansi.StringWidth(line))
			}
		}
	}

	if textWidth > 0 {
		w[colText] = min(w[colText], max(textWidth, ansi.StringWidth(headers[colText])))
	}

	return w
}

// Render draws the header and then each review as a block of one or more lines,
// with a separator under every block. The ID and rating only show on a block's first line.
func Render(reviews reviewing.Reviews, widths Widths) string {
	var b strings.Builder
	sep := separator(widths)

	b.WriteString(sep)
	writeLine(&b, widths, headers)
	b.WriteString(sep)

	for _, r := range reviews {
		var wrapped [columns][]string
		height := 1
		for i, cell := range cells(r) {
			if i == colID || i == colRating {
				wrapped[i] = []string{cell}
			} else {
				wrapped[i] = wrap(cell, widths[i])
			}
			height = max(height, len(wrapped[i]))
		}

		for line := range height {
			var row [columns]string
			for i := range wrapped {
				if line < len(wrapped[i]) {
					row[i] = wrapped[i][line]
				}
			}
			writeLine(&b, widths, row)
		}
		b.WriteString(sep)
	}

	return b.String()
}

func separator(widths Widths) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')

	return b.String()
}

func writeLine(b *strings.Builder, widths Widths, row [columns]string) {
	b.WriteByte('|')
	for i, cell := range row {
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", max(widths[i]-ansi.StringWidth(cell), 0)))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
}

// wrap breaks s into lines no wider than width, at the last space that fits.
// A run without a space that fits is cut at the width. Newlines in s always break.
func wrap(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine([]rune(para), width)...)
	}

	return lines
}

func wrapLine(runes []rune, width int) []string {
	var lines []string

	for {
		n := fit(runes, width)
		if n == len(runes) {
			return append(lines, string(runes))
		}

		cut, next := n, n
		// runes[n] is the first rune that doesn't fit; a space there breaks cleanly too.
		if i := lastSpace(runes[:n+1]); i > 0 {
			cut, next = i, i+1
		}

		lines = append(lines, string(runes[:cut]))
		runes = runes[next:]
	}
}

// fit returns how many leading runes fit in width, always at least one so wrapping moves on.
func fit(runes []rune, width int) int {
	w := 0
	for i, r := range runes {
		w += ansi.StringWidth(string(r))
		if w > width {
			return max(i, 1)
		}
	}

	return len(runes)
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}

	return -1
}
