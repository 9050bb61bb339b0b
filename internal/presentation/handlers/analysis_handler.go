package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bimakw/holder-insight/internal/application/services"
	"github.com/bimakw/holder-insight/internal/infrastructure/httpclient"
)

// AnalysisHandler handles HTTP requests for token holder analysis
type AnalysisHandler struct {
	service *services.SummaryService
	logger  *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *services.SummaryService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		logger:  logger,
	}
}

// SummaryDTO is the API representation of a generated summary
type SummaryDTO struct {
	TokenAddress string `json:"token_address"`
	Summary      string `json:"summary"`
}

// SummaryResponse wraps a summary for the API response
type SummaryResponse struct {
	Data SummaryDTO `json:"data"`
}

// GetTokenAnalysis handles GET /api/v1/tokens/{address}/analysis
func (h *AnalysisHandler) GetTokenAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address := chi.URLParam(r, "address")

	// Optional override of the configured default; 0 means "use default"
	topN := 0
	if v := r.URL.Query().Get("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "top_n must be an integer")
			return
		}
		topN = n
	}

	summary, err := h.service.Summarize(ctx, address, topN)
	if err != nil {
		var upstreamErr *httpclient.UpstreamError
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &upstreamErr):
			h.logger.Error("Upstream failure during analysis",
				zap.Error(err),
				zap.String("address", address),
				zap.Int("upstream_status", upstreamErr.StatusCode),
			)
			h.respondError(w, http.StatusBadGateway, "upstream request failed")
		default:
			h.logger.Error("Failed to analyze token", zap.Error(err), zap.String("address", address))
			h.respondError(w, http.StatusInternalServerError, "failed to analyze token")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, SummaryResponse{
		Data: SummaryDTO{
			TokenAddress: address,
			Summary:      summary,
		},
	})
}

func (h *AnalysisHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *AnalysisHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
