package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rmoran/weathervane/internal/analyzer"
	"github.com/rmoran/weathervane/internal/llm"
	"github.com/rmoran/weathervane/internal/weather"
)

// Pipeline runs the two stages in order: synthesize a reading for the city,
// then analyze it. Each run is independent; no state survives between runs.
type Pipeline struct {
	synth    *weather.Synthesizer
	analyzer *analyzer.Analyzer
}

// RunResult carries everything one invocation produced.
type RunResult struct {
	RunID    string
	City     string
	Reading  weather.Reading
	Report   analyzer.Report
	Duration time.Duration
}

func New(synth *weather.Synthesizer, a *analyzer.Analyzer) *Pipeline {
	return &Pipeline{
		synth:    synth,
		analyzer: a,
	}
}

// Run executes one full pipeline invocation. The only error it can surface
// is an invalid city from the synthesis stage; the analysis stage always
// succeeds.
func (p *Pipeline) Run(ctx context.Context, city string, opts ...llm.Option) (RunResult, error) {
	start := time.Now()
	runID := uuid.NewString()
	slog.Info("starting pipeline run", "run_id", runID, "city", city)

	reading, err := p.synth.Synthesize(city)
	if err != nil {
		return RunResult{}, fmt.Errorf("synthesize weather for %q: %w", city, err)
	}

	report := p.analyzer.Analyze(ctx, city, reading, opts...)

	duration := time.Since(start)
	slog.Info("pipeline run completed",
		"run_id", runID,
		"city", city,
		"provenance", report.Provenance,
		"duration", duration,
	)

	return RunResult{
		RunID:    runID,
		City:     city,
		Reading:  reading,
		Report:   report,
		Duration: duration,
	}, nil
}
