package weather

import (
	"errors"
	"math/rand"
	"strings"
)

// ErrEmptyCity is returned when a reading is requested for a blank city name.
var ErrEmptyCity = errors.New("city name cannot be empty")

// Jitter supplies one uniform draw in [-5, 5) added to the base temperature.
type Jitter func() float64

// Synthesizer derives a weather reading from a city name. Humidity and wind
// speed are pure functions of the name; only the temperature carries
// randomness, provided by the injected jitter so tests can pin it.
type Synthesizer struct {
	jitter Jitter
}

// NewSynthesizer creates a Synthesizer. A nil jitter falls back to the
// package-level math/rand source.
func NewSynthesizer(jitter Jitter) *Synthesizer {
	if jitter == nil {
		jitter = func() float64 { return rand.Float64()*10 - 5 }
	}
	return &Synthesizer{jitter: jitter}
}

// Synthesize builds the Reading for a city, consuming exactly one jitter
// draw. Humidity and wind derive from the first rune and the character
// count of the name.
func (s *Synthesizer) Synthesize(city string) (Reading, error) {
	if strings.TrimSpace(city) == "" {
		return Reading{}, ErrEmptyCity
	}

	runes := []rune(city)

	return Reading{
		Temperature: TemperatureBase(city) + s.jitter(),
		Humidity:    40 + int(runes[0])%40,
		WindSpeed:   float64(5 + len(runes)%15),
	}, nil
}

// TemperatureBase is the deterministic part of a city's temperature, before
// jitter: the rune-code sum of the lowercased name mod 30.
func TemperatureBase(city string) float64 {
	sum := 0
	for _, c := range strings.ToLower(city) {
		sum += int(c)
	}
	return float64(sum % 30)
}
