// Package stats computes min/max/mean aggregates over stored readings.
package stats

import (
	"math"

	"github.com/luki/roomsense/internal/sensor"
)

// Metric holds min/max/mean for one measured quantity.
type Metric struct {
	Min  float64
	Max  float64
	Mean float64
}

// Summary aggregates humidity and temperature independently over a set
// of readings. NewestTS is the largest timestamp seen.
type Summary struct {
	Count       int
	NewestTS    float64
	Humidity    Metric
	Temperature Metric
}

// Summarize computes a Summary over the given readings. An empty input
// yields a zero Summary with Count == 0.
func Summarize(readings []sensor.Reading) Summary {
	if len(readings) == 0 {
		return Summary{}
	}

	s := Summary{
		Count:       len(readings),
		NewestTS:    readings[0].TS,
		Humidity:    Metric{Min: math.MaxFloat64, Max: -math.MaxFloat64},
		Temperature: Metric{Min: math.MaxFloat64, Max: -math.MaxFloat64},
	}

	var hSum, tSum float64
	for _, r := range readings {
		if r.TS > s.NewestTS {
			s.NewestTS = r.TS
		}
		s.Humidity.Min = math.Min(s.Humidity.Min, r.Humidity)
		s.Humidity.Max = math.Max(s.Humidity.Max, r.Humidity)
		s.Temperature.Min = math.Min(s.Temperature.Min, r.Temperature)
		s.Temperature.Max = math.Max(s.Temperature.Max, r.Temperature)
		hSum += r.Humidity
		tSum += r.Temperature
	}

	s.Humidity.Mean = hSum / float64(s.Count)
	s.Temperature.Mean = tSum / float64(s.Count)
	return s
}
