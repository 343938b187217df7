package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rmoran/weathervane/internal/llm"
	"github.com/rmoran/weathervane/internal/weather"
)

// Provenance tags carried on every report so consumers can tell a model
// narrative from a rule-derived one.
const (
	ProvenanceLLM  = "LLM"
	ProvenanceRule = "Rule-based"
)

const defaultRemoteTimeout = 10 * time.Second

var systemPrompt = "You are a helpful weather analysis expert."

// Report is the analysis result handed back to the pipeline. Model and
// TokensUsed are only set on the LLM path.
type Report struct {
	Text       string
	Provenance string
	Model      string
	TokensUsed int64
}

// Analyzer turns a weather reading into a narrative report. It makes a
// single bounded attempt against the remote model and falls back to the
// rule engine on any failure, so Analyze never fails from the caller's
// point of view.
type Analyzer struct {
	provider llm.Provider
	rules    weather.RuleEngine
	timeout  time.Duration
}

func New(provider llm.Provider, timeout time.Duration) *Analyzer {
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return &Analyzer{
		provider: provider,
		timeout:  timeout,
	}
}

// Analyze produces the weather report for a city's reading. The remote
// failure, whatever its cause, is logged and absorbed here.
func (a *Analyzer) Analyze(ctx context.Context, city string, r weather.Reading, opts ...llm.Option) Report {
	resp, err := a.tryRemote(ctx, city, r, opts...)
	if err != nil {
		slog.Warn("remote analysis failed, using rule-based fallback", "city", city, "error", err)
		return Report{
			Text:       a.rules.Report(city, r),
			Provenance: ProvenanceRule,
		}
	}

	return Report{
		Text:       composeRemoteReport(city, resp, r),
		Provenance: ProvenanceLLM,
		Model:      resp.Model,
		TokensUsed: resp.Usage.TotalTokens,
	}
}

// tryRemote makes exactly one call against the model, bounded by the
// configured timeout. No retries.
func (a *Analyzer) tryRemote(ctx context.Context, city string, r weather.Reading, opts ...llm.Option) (*llm.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	return a.provider.Complete(ctx, systemPrompt, buildPrompt(city, r), opts...)
}

func buildPrompt(city string, r weather.Reading) string {
	return fmt.Sprintf(`You are a weather expert AI assistant. Analyze the following weather data for %s and provide detailed insights and recommendations.

Weather Data:
- City: %s
- Temperature: %.1f°C
- Humidity: %d%%
- Wind Speed: %.1f km/h

Please provide:
1. A brief weather assessment
2. Comfort level rating (1-10)
3. Recommended activities
4. What to wear
5. Any weather warnings or tips

Keep your response concise but informative.`, city, city, r.Temperature, r.Humidity, r.WindSpeed)
}

func composeRemoteReport(city string, resp *llm.Response, r weather.Reading) string {
	return fmt.Sprintf("LLM Weather Analysis for %s:\n\n%s\n\n---\nRaw Data: %s\nPowered by: LLM (%s)",
		city, resp.Content, r.Raw(), resp.Model)
}
