package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoran/weathervane/internal/llm"
	"github.com/rmoran/weathervane/internal/weather"
)

// stubProvider scripts the remote outcome and records what it was asked.
type stubProvider struct {
	resp       *llm.Response
	err        error
	systemSeen string
	userSeen   string
	optsSeen   llm.Options
	ctxSeen    context.Context
	calls      int
}

func (s *stubProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, opts ...llm.Option) (*llm.Response, error) {
	s.calls++
	s.systemSeen = systemPrompt
	s.userSeen = userPrompt
	s.ctxSeen = ctx

	options := llm.Options{MaxTokens: 300, Temperature: 0.7}
	for _, opt := range opts {
		opt(&options)
	}
	s.optsSeen = options

	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func TestAnalyzeRemoteSuccess(t *testing.T) {
	provider := &stubProvider{
		resp: &llm.Response{
			Content: "A lovely mild day, comfort 8/10.",
			Model:   "gpt-4o-mini",
			Usage:   llm.Usage{TotalTokens: 123},
		},
	}
	a := New(provider, time.Second)
	r := weather.Reading{Temperature: 18.0, Humidity: 55, WindSpeed: 9.0}

	report := a.Analyze(context.Background(), "Oslo", r)

	assert.Equal(t, ProvenanceLLM, report.Provenance)
	assert.Equal(t, "gpt-4o-mini", report.Model)
	assert.Equal(t, int64(123), report.TokensUsed)
	assert.Contains(t, report.Text, "LLM Weather Analysis for Oslo:")
	assert.Contains(t, report.Text, "A lovely mild day")
	assert.Contains(t, report.Text, "Raw Data: 18.0°C, 55% humidity, 9.0 km/h wind")
}

func TestAnalyzePromptContents(t *testing.T) {
	provider := &stubProvider{resp: &llm.Response{Content: "ok"}}
	a := New(provider, time.Second)
	r := weather.Reading{Temperature: 3.24, Humidity: 71, WindSpeed: 12.0}

	a.Analyze(context.Background(), "Reykjavik", r)

	assert.Equal(t, "You are a helpful weather analysis expert.", provider.systemSeen)
	assert.Contains(t, provider.userSeen, "- City: Reykjavik")
	assert.Contains(t, provider.userSeen, "- Temperature: 3.2°C")
	assert.Contains(t, provider.userSeen, "- Humidity: 71%")
	assert.Contains(t, provider.userSeen, "- Wind Speed: 12.0 km/h")
	assert.Contains(t, provider.userSeen, "Comfort level rating (1-10)")
}

func TestAnalyzeFallbackOnFailure(t *testing.T) {
	failures := []error{
		llm.ErrMissingAPIKey,
		errors.New("connection refused"),
		context.DeadlineExceeded,
	}

	for _, failure := range failures {
		provider := &stubProvider{err: failure}
		a := New(provider, time.Second)
		r := weather.Reading{Temperature: 15.0, Humidity: 85, WindSpeed: 25.0}

		report := a.Analyze(context.Background(), "Lisbon", r)

		assert.Equal(t, 1, provider.calls, "exactly one attempt, no retries")
		assert.Equal(t, ProvenanceRule, report.Provenance)
		assert.Empty(t, report.Model)
		assert.NotEmpty(t, report.Text)
		assert.Contains(t, report.Text, "Lisbon")
		assert.Contains(t, report.Text, "Rule-based")
		assert.Contains(t, report.Text, "Comfort Level: 7/10")
		assert.Contains(t, report.Text, "secure loose items")
	}
}

func TestAnalyzeBoundsRemoteCall(t *testing.T) {
	provider := &stubProvider{err: errors.New("slow")}
	a := New(provider, 50*time.Millisecond)

	a.Analyze(context.Background(), "Cairo", weather.Reading{Temperature: 36, Humidity: 20, WindSpeed: 8})

	require.NotNil(t, provider.ctxSeen)
	deadline, ok := provider.ctxSeen.Deadline()
	require.True(t, ok, "remote call should carry a deadline")
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, time.Second)
}

func TestAnalyzeOptionsPassThrough(t *testing.T) {
	provider := &stubProvider{resp: &llm.Response{Content: "ok"}}
	a := New(provider, time.Second)

	a.Analyze(context.Background(), "Lima", weather.Reading{Temperature: 20, Humidity: 60, WindSpeed: 7},
		llm.Option(func(o *llm.Options) {
			o.Model = "gpt-4o"
			o.MaxTokens = 150
		}))

	assert.Equal(t, "gpt-4o", provider.optsSeen.Model)
	assert.Equal(t, int64(150), provider.optsSeen.MaxTokens)
}
