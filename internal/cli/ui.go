package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/legend"
	"github.com/matzehuels/plotscale/pkg/margin"
	"github.com/matzehuels/plotscale/pkg/scaling"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StyleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StyleWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printHeading prints a section heading preceded by a blank line.
func printHeading(w io.Writer, s string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render(s))
}

// =============================================================================
// Formatting
// =============================================================================

func formatRect(r geom.Rect) string {
	return fmt.Sprintf("%.1f,%.1f %.1fx%.1f", r.X, r.Y, r.Width, r.Height)
}

func formatSize(s geom.Size) string {
	return fmt.Sprintf("%.1fx%.1f", s.Width, s.Height)
}

func formatNumber(v float64) string {
	if v == 0 {
		return StyleDim.Render("-")
	}
	return fmt.Sprintf("%.1f", v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})
}

// =============================================================================
// Tables
// =============================================================================

// ledgerTable renders one row per margin contribution plus the total.
func ledgerTable(res *scaling.Result) string {
	t := newTable("Use", "Left", "Right", "Top", "Bottom")
	if res.Ledger != nil {
		for _, e := range res.Ledger.Entries() {
			t.Row(marginRow(e.Use.String(), e.Margin)...)
		}
	}
	if !res.AspectShrink.IsZero() {
		t.Row(marginRow("aspect-shrink", res.AspectShrink)...)
	}
	t.Row(marginRow("total", res.Margins)...)
	return t.Render()
}

func marginRow(name string, m margin.Margin) []string {
	return []string{
		name,
		formatNumber(m.Left),
		formatNumber(m.Right),
		formatNumber(m.Top),
		formatNumber(m.Bottom),
	}
}

// axesTable renders one row per reserved axis side.
func axesTable(res *scaling.Result) string {
	t := newTable("Axis", "Side", "Offset", "Required", "Elong. min", "Elong. max")
	for _, a := range res.Axes {
		t.Row(
			a.Axis,
			a.Side.String(),
			formatNumber(a.Offset),
			formatNumber(a.Size.Required),
			formatNumber(a.Size.ElongationMin),
			formatNumber(a.Size.ElongationMax),
		)
	}
	return t.Render()
}

// passesTable renders the per-pass trace.
func passesTable(res *scaling.Result) string {
	t := newTable("Pass", "Plot", "Legend guess", "Legend", "Grid")
	for i, p := range res.Passes {
		t.Row(
			fmt.Sprint(i+1),
			formatRect(p.Plot),
			formatSize(p.LegendGuess),
			formatSize(p.LegendSize),
			fmt.Sprintf("%dx%d", p.LegendColumns, p.LegendRows),
		)
	}
	return t.Render()
}

// legendGrid renders the legend as it is drawn: one table column per
// legend column, labels top to bottom.
func legendGrid(l legend.Layout) string {
	cols := l.ColumnCount()
	headers := make([]string, cols)
	for i := 0; i < cols; i++ {
		headers[i] = fmt.Sprintf("col %d", i+1)
	}
	t := newTable(headers...)
	for r := 0; r < l.RowCount(); r++ {
		row := make([]string, cols)
		for c, col := range l.Columns {
			if r < len(col.Items) {
				row[c] = col.Items[r].Label
			}
		}
		t.Row(row...)
	}
	return t.Render()
}
