package weather

import "fmt"

// Reading is a synthesized weather measurement for one city. It is created
// once per pipeline run and never mutated afterwards.
type Reading struct {
	Temperature float64 `json:"temperatureC"`
	Humidity    int     `json:"humidityPercent"`
	WindSpeed   float64 `json:"windSpeedKmh"`
}

// Raw renders the reading in the compact form echoed at the bottom of every
// report.
func (r Reading) Raw() string {
	return fmt.Sprintf("%.1f°C, %d%% humidity, %.1f km/h wind", r.Temperature, r.Humidity, r.WindSpeed)
}
