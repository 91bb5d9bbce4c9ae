package sensor

import (
	"math/rand"
	"time"
)

// Band tables the generator cycles through, one step per sample.
var (
	humidityBands    = []float64{0, 20, 20, 40, 40, 60, 60, 80, 80, 90, 70, 50, 30, 10, 0}
	temperatureBands = []float64{-20, -10, 0, 10, 30, 50, 70, 85, 95, 100, 90, 70, 50, 30, 10}
)

// Jitter added on top of the current band value per sample.
const (
	humidityJitter    = 10.0
	temperatureJitter = 5.0
)

// Generator produces synthetic humidity/temperature pairs. Each call to
// Next reads the current band of each table, adds jitter, and advances
// both indices by one (wrapping independently). Not safe for concurrent
// use; the app drives it from a single event loop.
type Generator struct {
	hIdx int
	tIdx int
	rng  *rand.Rand
}

// NewGenerator returns a generator starting at the first band of each
// table, seeded from the current time.
func NewGenerator() *Generator {
	return newGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Next returns the next humidity/temperature pair, clamped to the
// display ranges, and advances the band indices.
func (g *Generator) Next() (humidity, temperature float64) {
	humidity = humidityBands[g.hIdx] + g.rng.Float64()*humidityJitter
	temperature = temperatureBands[g.tIdx] + g.rng.Float64()*temperatureJitter

	g.hIdx = (g.hIdx + 1) % len(humidityBands)
	g.tIdx = (g.tIdx + 1) % len(temperatureBands)

	return clamp(humidity, HumidityMin, HumidityMax),
		clamp(temperature, TemperatureMin, TemperatureMax)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
