package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nyaya-ai/legal-voice-api/internal/api/response"
	"github.com/nyaya-ai/legal-voice-api/internal/domain"
	"github.com/nyaya-ai/legal-voice-api/internal/export"
	"github.com/nyaya-ai/legal-voice-api/internal/service"
)

// ExportHandler renders a session's persisted report for download
type ExportHandler struct {
	reportService *service.ReportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(reportService *service.ReportService) *ExportHandler {
	return &ExportHandler{reportService: reportService}
}

// Export serves the report in the requested format: json (default) or a
// paginated plain-text document.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		response.BadRequest(w, "missing session ID")
		return
	}

	rep, err := h.reportService.GetReport(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Report not found")
			return
		}
		response.InternalError(w, "Failed to export report", err.Error())
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		response.OK(w, export.JSON(rep))
	case "document":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="legal-report-`+sessionID+`.txt"`)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(export.Document(rep)))
	default:
		response.BadRequest(w, "unsupported format: "+format)
	}
}
