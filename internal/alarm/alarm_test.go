package alarm

import "testing"

func TestEvaluate(t *testing.T) {
	th := Thresholds{Humidity: 85, Temperature: 90}

	tests := []struct {
		name        string
		humidity    float64
		temperature float64
		want        bool
	}{
		{"both low", 10, 20, false},
		{"humidity above", 85.1, 20, true},
		{"temperature above", 10, 95, true},
		{"both above", 90, 95, true},
		{"humidity at threshold", 85, 20, false},
		{"temperature at threshold", 10, 90, false},
		{"both at threshold", 85, 90, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.humidity, tt.temperature, th); got != tt.want {
				t.Errorf("Evaluate(%f, %f) = %v, want %v", tt.humidity, tt.temperature, got, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	th := Defaults()
	if th.Humidity != 85 || th.Temperature != 90 {
		t.Errorf("Defaults() = %+v, want {85 90}", th)
	}
}
