package stats

import (
	"math"
	"testing"

	"github.com/luki/roomsense/internal/sensor"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 {
		t.Errorf("Count: got %d, want 0", s.Count)
	}
}

func TestSummarize(t *testing.T) {
	readings := []sensor.Reading{
		{TS: 300, Humidity: 50, Temperature: 70},
		{TS: 200, Humidity: 20, Temperature: 95},
		{TS: 100, Humidity: 80, Temperature: -10},
	}

	s := Summarize(readings)

	if s.Count != 3 {
		t.Fatalf("Count: got %d, want 3", s.Count)
	}
	if s.NewestTS != 300 {
		t.Errorf("NewestTS: got %f, want 300", s.NewestTS)
	}
	if s.Humidity.Min != 20 || s.Humidity.Max != 80 {
		t.Errorf("humidity min/max: got %f/%f, want 20/80", s.Humidity.Min, s.Humidity.Max)
	}
	if s.Humidity.Mean != 50 {
		t.Errorf("humidity mean: got %f, want 50", s.Humidity.Mean)
	}
	if s.Temperature.Min != -10 || s.Temperature.Max != 95 {
		t.Errorf("temperature min/max: got %f/%f, want -10/95", s.Temperature.Min, s.Temperature.Max)
	}
	wantMean := (70.0 + 95.0 - 10.0) / 3.0
	if math.Abs(s.Temperature.Mean-wantMean) > 1e-9 {
		t.Errorf("temperature mean: got %f, want %f", s.Temperature.Mean, wantMean)
	}
}

func TestSummarizeSingle(t *testing.T) {
	s := Summarize([]sensor.Reading{{TS: 1, Humidity: 33.3, Temperature: 66.6}})
	if s.Humidity.Min != 33.3 || s.Humidity.Max != 33.3 || s.Humidity.Mean != 33.3 {
		t.Errorf("single humidity: got %+v, want all 33.3", s.Humidity)
	}
	if s.Temperature.Min != 66.6 || s.Temperature.Max != 66.6 || s.Temperature.Mean != 66.6 {
		t.Errorf("single temperature: got %+v, want all 66.6", s.Temperature)
	}
}
