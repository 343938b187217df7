package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rmoran/weathervane/apimodels"
	"github.com/rmoran/weathervane/internal/llm"
	"github.com/rmoran/weathervane/internal/weather"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	city := strings.TrimSpace(req.City)
	if city == "" {
		city = s.defaultCity
	}

	slog.Debug("received analysis request", "city", city)

	opt := llm.Option(func(o *llm.Options) {
		if req.Options.Model != "" {
			o.Model = req.Options.Model
		}
		if req.Options.MaxTokens != 0 {
			o.MaxTokens = req.Options.MaxTokens
		}
		if req.Options.Temperature != nil {
			o.Temperature = *req.Options.Temperature
		}
	})

	result, err := s.pipeline.Run(r.Context(), city, opt)
	if err != nil {
		if errors.Is(err, weather.ErrEmptyCity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("pipeline run failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := apimodels.AnalysisResponse{
		Result:     result.Report.Text,
		Provenance: result.Report.Provenance,
		Reading:    result.Reading,
		Metadata: apimodels.AnalysisMetadata{
			RunID:        result.RunID,
			DeploymentID: s.deploymentID,
			Duration:     result.Duration.String(),
			Model:        result.Report.Model,
			TokensUsed:   result.Report.TokensUsed,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":       "ok",
		"deploymentId": s.deploymentID,
	})
}
