// Package sensor provides the simulated humidity/temperature source.
// Values follow fixed cyclic band tables with random jitter so that the
// readings show realistic trends without any hardware attached.
package sensor

import "time"

// Reading is a single stored humidity/temperature sample.
type Reading struct {
	TS          float64 // unix epoch seconds
	Humidity    float64 // percent
	Temperature float64 // degrees Fahrenheit
}

// Time returns the reading's timestamp in local time.
func (r Reading) Time() time.Time {
	sec := int64(r.TS)
	nsec := int64((r.TS - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// Display ranges. The generator clamps its output to these and the UI
// clamps its bars to the same bounds.
const (
	HumidityMin    = 0.0
	HumidityMax    = 100.0
	TemperatureMin = -20.0
	TemperatureMax = 100.0
)
