package apimodels

import "github.com/rmoran/weathervane/internal/weather"

type AnalysisResponse struct {
	// The narrative weather report
	Result string `json:"result"`

	// Where the narrative came from: "LLM" or "Rule-based"
	Provenance string `json:"provenance"`

	// The synthesized reading the report was built from
	Reading weather.Reading `json:"reading"`

	// Metadata about the run
	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	// Identifier of this pipeline run
	RunID string `json:"runId"`

	// Identifier of the serving deployment
	DeploymentID string `json:"deploymentId"`

	// Time taken for the run
	Duration string `json:"duration"`

	// Model used, when the LLM path succeeded
	Model string `json:"model,omitempty"`

	// Tokens used, when the LLM path succeeded
	TokensUsed int64 `json:"tokensUsed,omitempty"`
}
