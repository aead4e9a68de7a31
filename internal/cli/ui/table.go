package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Table accumulates rows and renders them with columns sized to fit,
// the way `tether inspect` lists classes and members.
type Table struct {
	w       io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

func NewTable(w io.Writer, headers []string, noColor bool) *Table {
	return &Table{w: w, headers: headers, noColor: noColor}
}

func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], len(cell))
			}
		}
	}

	head := color.New(color.Bold, color.FgCyan)
	rule := color.New(color.FgHiBlack)
	if t.noColor {
		head.DisableColor()
		rule.DisableColor()
	}

	for i, h := range t.headers {
		head.Fprint(t.w, pad(h, widths[i]))
		if i < len(t.headers)-1 {
			fmt.Fprint(t.w, "  ")
		}
	}
	fmt.Fprintln(t.w)

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("─", w)
	}
	rule.Fprintln(t.w, strings.Join(rules, "  "))

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			fmt.Fprint(t.w, pad(cell, widths[i]))
			if i < len(row)-1 {
				fmt.Fprint(t.w, "  ")
			}
		}
		fmt.Fprintln(t.w)
	}
}

// KeyValueTable renders aligned key: value pairs.
type KeyValueTable struct {
	w       io.Writer
	keys    []string
	values  []string
	noColor bool
}

func NewKeyValueTable(w io.Writer, noColor bool) *KeyValueTable {
	return &KeyValueTable{w: w, noColor: noColor}
}

func (t *KeyValueTable) AddRow(key, value string) {
	t.keys = append(t.keys, key)
	t.values = append(t.values, value)
}

func (t *KeyValueTable) Render() {
	width := 0
	for _, k := range t.keys {
		width = max(width, len(k))
	}

	keyColor := color.New(color.FgCyan)
	if t.noColor {
		keyColor.DisableColor()
	}
	for i, k := range t.keys {
		keyColor.Fprint(t.w, pad(k+":", width+1))
		fmt.Fprintf(t.w, " %s\n", t.values[i])
	}
}

// Header prints a title with an underline matching its width.
func Header(w io.Writer, title string, noColor bool) {
	head := color.New(color.Bold, color.FgCyan)
	rule := color.New(color.FgHiBlack)
	if noColor {
		head.DisableColor()
		rule.DisableColor()
	}
	head.Fprintln(w, title)
	rule.Fprintln(w, strings.Repeat("─", len(title)))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
