// Package alarm evaluates readings against user-configured thresholds.
package alarm

// Thresholds holds the alarm trip points. Values at or below a
// threshold never trip it.
type Thresholds struct {
	Humidity    float64 // percent
	Temperature float64 // degrees Fahrenheit
}

// Defaults returns the session-start thresholds.
func Defaults() Thresholds {
	return Thresholds{Humidity: 85, Temperature: 90}
}

// Evaluate reports whether either metric strictly exceeds its
// threshold.
func Evaluate(humidity, temperature float64, th Thresholds) bool {
	return humidity > th.Humidity || temperature > th.Temperature
}
