package chart

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGaugeCells(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		min, max float64
		width    int
		want     int
	}{
		{"empty at range min", 0, 0, 100, 20, 0},
		{"full at range max", 100, 0, 100, 20, 20},
		{"half", 50, 0, 100, 20, 10},
		{"clamped below", -40, -20, 100, 24, 0},
		{"clamped above", 250, -20, 100, 24, 24},
		{"negative range midpoint", 40, -20, 100, 24, 12},
		{"truncates fraction", 50.9, 0, 100, 100, 50},
		{"zero width", 50, 0, 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gaugeCells(tt.v, tt.min, tt.max, tt.width); got != tt.want {
				t.Errorf("gaugeCells(%f, %f, %f, %d) = %d, want %d",
					tt.v, tt.min, tt.max, tt.width, got, tt.want)
			}
		})
	}
}

func TestValueColor(t *testing.T) {
	tests := []struct {
		v, threshold float64
		want         lipgloss.Color
	}{
		{50, 85, lipgloss.Color("78")},
		{80, 85, lipgloss.Color("220")},
		{85, 85, lipgloss.Color("220")},
		{85.1, 85, lipgloss.Color("196")},
	}

	for _, tt := range tests {
		if got := ValueColor(tt.v, tt.threshold); got != tt.want {
			t.Errorf("ValueColor(%f, %f) = %q, want %q", tt.v, tt.threshold, got, tt.want)
		}
	}
}
