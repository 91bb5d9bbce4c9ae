// Package chart renders the proportional value gauges and the
// threshold-colored value text for the live panel.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ValueColor returns the display color for a value given its alarm
// threshold: red once the threshold is exceeded, yellow when within 10%
// of it, green otherwise.
func ValueColor(v, threshold float64) lipgloss.Color {
	switch {
	case v > threshold:
		return lipgloss.Color("196") // red
	case v >= threshold*0.9:
		return lipgloss.Color("220") // yellow
	default:
		return lipgloss.Color("78") // soft green
	}
}

// gaugeCells maps a value onto [0, width] cells. The value is clamped
// to the display range and truncated to an integer first; the stored
// reading keeps full precision, only the bar is coarse.
func gaugeCells(v, rangeMin, rangeMax float64, width int) int {
	iv := float64(int(v))
	if iv < rangeMin {
		iv = rangeMin
	}
	if iv > rangeMax {
		iv = rangeMax
	}
	span := rangeMax - rangeMin
	if span <= 0 || width <= 0 {
		return 0
	}
	cells := int(float64(width) * (iv - rangeMin) / span)
	if cells > width {
		cells = width
	}
	return cells
}

// RenderGauge renders a horizontal bar for v over [rangeMin, rangeMax],
// with a marker at the alarm threshold position.
func RenderGauge(v, rangeMin, rangeMax, threshold float64, width int) string {
	if width <= 0 {
		return ""
	}

	filled := gaugeCells(v, rangeMin, rangeMax, width)
	threshPos := -1
	if threshold > rangeMin && threshold <= rangeMax {
		threshPos = gaugeCells(threshold, rangeMin, rangeMax, width-1)
	}

	fillStyle := lipgloss.NewStyle().Foreground(ValueColor(v, threshold))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	markStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	var sb strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == threshPos:
			sb.WriteString(markStyle.Render("▕"))
		case i < filled:
			sb.WriteString(fillStyle.Render("█"))
		default:
			sb.WriteString(emptyStyle.Render("─"))
		}
	}
	return sb.String()
}

// RenderValue renders a value with its unit suffix, colored against the
// threshold and bolded while in alarm.
func RenderValue(v, threshold float64, unit string) string {
	s := fmt.Sprintf("%5.1f %s", v, unit)
	style := lipgloss.NewStyle().Foreground(ValueColor(v, threshold))
	if v > threshold {
		style = style.Bold(true)
	}
	return style.Render(s)
}
