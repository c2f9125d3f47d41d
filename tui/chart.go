package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const overlapMark = '◉'

// Series is one line of a LineChart.
type Series struct {
	Label  string
	Values []float64
	Mark   rune
	Style  lipgloss.Style
}

// LineChart plots one or more series of non-negative values against their
// index on a character grid.
type LineChart struct {
	series []Series
	width  int
	height int
	label  func(float64) string
	xLabel string
}

// NewLineChart creates a chart whose plot area is width columns by height
// rows. Both are raised to at least 2.
func NewLineChart(width, height int) *LineChart {
	return &LineChart{
		width:  max(width, 2),
		height: max(height, 2),
		label:  func(v float64) string { return fmt.Sprintf("%.0f", v) },
	}
}

// AddSeries appends a series to the chart.
func (c *LineChart) AddSeries(s Series) *LineChart {
	c.series = append(c.series, s)
	return c
}

// SetLabelFunc sets how the y axis values are printed.
func (c *LineChart) SetLabelFunc(f func(float64) string) *LineChart {
	c.label = f
	return c
}

// SetXLabel sets the unit printed after the last x axis tick.
func (c *LineChart) SetXLabel(l string) *LineChart {
	c.xLabel = l
	return c
}

type cell struct {
	mark   rune
	series int
}

// View renders the chart, its axes and a legend.
func (c *LineChart) View() string {
	points, top := 0, 0.0
	for _, s := range c.series {
		points = max(points, len(s.Values))
		for _, v := range s.Values {
			top = math.Max(top, v)
		}
	}
	if points == 0 || top <= 0 {
		return "no data to plot"
	}

	grid := make([][]cell, c.height)
	for row := range grid {
		grid[row] = make([]cell, c.width)
	}

	for si, s := range c.series {
		for col := 0; col < c.width; col++ {
			i := c.indexAt(col, points)
			if i >= len(s.Values) {
				break
			}
			v := math.Max(s.Values[i], 0)
			row := c.height - 1 - int(math.Round(v/top*float64(c.height-1)))

			existing := grid[row][col]
			switch {
			case existing.mark == 0:
				grid[row][col] = cell{mark: s.Mark, series: si}
			case existing.series != si:
				grid[row][col] = cell{mark: overlapMark, series: -1}
			}
		}
	}

	topLabel, zeroLabel := c.label(top), c.label(0)
	gutter := max(lipgloss.Width(topLabel), lipgloss.Width(zeroLabel))

	var b strings.Builder
	for row := range grid {
		tick := ""
		switch row {
		case 0:
			tick = topLabel
		case c.height - 1:
			tick = zeroLabel
		}
		b.WriteString(fmt.Sprintf("%*s ┤", gutter, tick))
		for _, cl := range grid[row] {
			switch {
			case cl.mark == 0:
				b.WriteByte(' ')
			case cl.series < 0:
				b.WriteRune(cl.mark)
			default:
				b.WriteString(c.series[cl.series].Style.Render(string(cl.mark)))
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", gutter+1) + "└" + strings.Repeat("─", c.width) + "\n")

	last := fmt.Sprintf("%d", points-1)
	if c.xLabel != "" {
		last += " " + c.xLabel
	}
	pad := max(c.width-len(last)-1, 1)
	b.WriteString(strings.Repeat(" ", gutter+2) + "0" + strings.Repeat(" ", pad) + last + "\n")

	legend := make([]string, 0, len(c.series))
	for _, s := range c.series {
		legend = append(legend, s.Style.Render(string(s.Mark))+" "+s.Label)
	}
	b.WriteString(strings.Repeat(" ", gutter+2) + strings.Join(legend, "   "))

	return b.String()
}

// indexAt maps a plot column to a data index so the longest series spans
// the full width.
func (c *LineChart) indexAt(col, points int) int {
	if points <= 1 {
		return 0
	}
	return int(math.Round(float64(col) * float64(points-1) / float64(c.width-1)))
}
