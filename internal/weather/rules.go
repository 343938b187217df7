package weather

import (
	"fmt"
	"strings"
)

// Classification is the rule engine's verdict on a reading: a temperature
// bucket plus the adjusted comfort score and the advice attached to it.
type Classification struct {
	Description string
	Comfort     int
	Activities  string
	Clothing    string
	Warning     string
}

// RuleEngine classifies readings without any external calls. It backs the
// analyzer whenever the remote model is unavailable.
type RuleEngine struct{}

// Classify buckets the temperature into one of five ranges (upper bounds
// exclusive) and applies the humidity and wind adjustments. The comfort
// score is left unclamped after the humidity penalty.
func (RuleEngine) Classify(r Reading) Classification {
	var c Classification
	switch {
	case r.Temperature < 0:
		c = Classification{
			Description: "freezing",
			Comfort:     2,
			Activities:  "indoor activities, ice skating",
			Clothing:    "heavy winter coat, gloves, warm boots",
			Warning:     "Risk of frostbite - limit outdoor exposure.",
		}
	case r.Temperature < 10:
		c = Classification{
			Description: "cold",
			Comfort:     4,
			Activities:  "brisk walks, winter sports",
			Clothing:    "warm jacket, layers, closed shoes",
			Warning:     "Bundle up to stay warm.",
		}
	case r.Temperature < 25:
		c = Classification{
			Description: "pleasant",
			Comfort:     8,
			Activities:  "hiking, cycling, outdoor dining",
			Clothing:    "light jacket or sweater",
			Warning:     "Perfect weather for outdoor activities!",
		}
	case r.Temperature < 35:
		c = Classification{
			Description: "hot",
			Comfort:     6,
			Activities:  "swimming, early morning walks",
			Clothing:    "light clothing, sun hat, sunscreen",
			Warning:     "Stay hydrated and seek shade.",
		}
	default:
		c = Classification{
			Description: "extremely hot",
			Comfort:     3,
			Activities:  "indoor activities, swimming",
			Clothing:    "minimal light clothing, sun protection",
			Warning:     "Heat warning - avoid prolonged sun exposure.",
		}
	}

	// The two humidity branches cannot both fire; wind is independent.
	switch {
	case r.Humidity > 80:
		c.Comfort--
		c.Warning += " High humidity will make it feel warmer."
	case r.Humidity < 30:
		c.Warning += " Low humidity may cause dry skin."
	}

	if r.WindSpeed > 20 {
		c.Warning += " Strong winds - secure loose items."
	}

	return c
}

// Report composes the full rule-based analysis text for a city.
func (e RuleEngine) Report(city string, r Reading) string {
	c := e.Classify(r)

	var b strings.Builder
	fmt.Fprintf(&b, "Weather Analysis for %s:\n\n", city)
	fmt.Fprintf(&b, "Assessment: %s weather with %d%% humidity\n", titleCase(c.Description), r.Humidity)
	fmt.Fprintf(&b, "Comfort Level: %d/10\n", c.Comfort)
	fmt.Fprintf(&b, "Wind Conditions: %.1f km/h\n\n", r.WindSpeed)
	fmt.Fprintf(&b, "Recommended Activities: %s\n", c.Activities)
	fmt.Fprintf(&b, "What to Wear: %s\n", c.Clothing)
	fmt.Fprintf(&b, "Weather Tips: %s\n\n", c.Warning)
	fmt.Fprintf(&b, "---\nRaw Data: %s\nAnalysis: Rule-based (LLM unavailable)", r.Raw())
	return b.String()
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
