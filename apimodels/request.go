package apimodels

type AnalysisRequest struct {
	// City to analyze weather for; the configured default applies when empty
	City string `json:"city"`

	// Optional parameters to control the remote model
	Options AnalysisOptions `json:"options,omitempty"`
}

type AnalysisOptions struct {
	// Model specifies which LLM model to use (e.g. "gpt-4o")
	Model string `json:"model,omitempty"`

	// MaxTokens limits the LLM response length
	MaxTokens int64 `json:"maxTokens,omitempty"`

	// Temperature controls randomness (0.0-1.0); nil keeps the provider
	// default, so an explicit 0 is honored
	Temperature *float64 `json:"temperature,omitempty"`
}
