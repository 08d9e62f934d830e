package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nyaya-ai/legal-voice-api/internal/api/middleware"
	"github.com/nyaya-ai/legal-voice-api/internal/api/response"
	"github.com/nyaya-ai/legal-voice-api/internal/domain"
	"github.com/nyaya-ai/legal-voice-api/internal/service"
)

// ReportHandler handles legal-report generation
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type reportRequest struct {
	SessionID     string                      `json:"sessionId" validate:"required"`
	SessionDetail *domain.ConsultationSession `json:"sessionDetail"`
	Messages      []domain.Turn               `json:"messages"`
	Duration      string                      `json:"duration"`
}

// Generate synthesizes a legal report for a finished consultation. Degraded
// outcomes (backend down, unparseable model output) still return HTTP 200 with
// a complete report body; only a missing sessionId or identity is an error.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetIdentity(r.Context()); !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input reportRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, "Session ID is required")
		return
	}

	result, err := h.reportService.Synthesize(r.Context(), service.SynthesizeRequest{
		SessionID:     input.SessionID,
		SessionDetail: input.SessionDetail,
		Messages:      input.Messages,
		Duration:      input.Duration,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			response.BadRequest(w, "Session ID is required")
			return
		}
		log.Error().Err(err).Str("session_id", input.SessionID).Msg("report synthesis failed")
		response.InternalError(w, "Failed to generate report", err.Error())
		return
	}

	if result.Degraded() {
		log.Warn().
			Str("session_id", input.SessionID).
			Str("status", string(result.Status)).
			Msg("report synthesis degraded to fallback")
	}

	response.OK(w, result.Report)
}
