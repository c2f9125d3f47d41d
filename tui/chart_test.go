package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineChart_Layout(t *testing.T) {
	view := NewLineChart(10, 5).
		AddSeries(Series{Label: "fast", Values: []float64{100, 50, 0}, Mark: 'a'}).
		AddSeries(Series{Label: "slow", Values: []float64{100, 75, 50, 25, 0}, Mark: 'b'}).
		View()

	lines := strings.Split(view, "\n")
	// plot rows, x axis, x ticks, legend
	require.Len(t, lines, 5+3)

	assert.True(t, strings.HasPrefix(lines[0], "100 ┤"), lines[0])
	assert.True(t, strings.HasPrefix(lines[4], "  0 ┤"), lines[4])
	assert.Contains(t, lines[0], string(overlapMark), "both series start at the same value")
	assert.Contains(t, lines[5], "└──────────")
	assert.Contains(t, lines[7], "a fast")
	assert.Contains(t, lines[7], "b slow")
}

func TestLineChart_PlotsEndpoints(t *testing.T) {
	view := NewLineChart(2, 3).
		AddSeries(Series{Label: "debt", Values: []float64{100, 0}, Mark: '*'}).
		View()

	lines := strings.Split(view, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "100 ┤* ", lines[0])
	assert.Equal(t, "    ┤  ", lines[1])
	assert.Equal(t, "  0 ┤ *", lines[2])
}

func TestLineChart_NoData(t *testing.T) {
	assert.Equal(t, "no data to plot", NewLineChart(10, 5).View())

	zero := NewLineChart(10, 5).AddSeries(Series{Label: "paid", Values: []float64{0, 0}, Mark: '*'})
	assert.Equal(t, "no data to plot", zero.View())
}

func TestLineChart_LabelFunc(t *testing.T) {
	view := NewLineChart(4, 2).
		SetLabelFunc(func(v float64) string { return "kr" }).
		SetXLabel("months").
		AddSeries(Series{Label: "debt", Values: []float64{10, 5, 0}, Mark: '*'}).
		View()

	assert.True(t, strings.HasPrefix(view, "kr ┤"))
	assert.Contains(t, view, "2 months")
}
