package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nyaya-ai/legal-voice-api/internal/api/response"
	"github.com/nyaya-ai/legal-voice-api/internal/catalog"
	"github.com/nyaya-ai/legal-voice-api/internal/prompt"
	"github.com/nyaya-ai/legal-voice-api/internal/service"
)

// LawyerHandler serves the lawyer catalog, LLM-backed lawyer suggestions and
// resolved persona prompts.
type LawyerHandler struct {
	catalog        *catalog.Catalog
	suggestService *service.SuggestService
	resolver       *prompt.Resolver
}

// NewLawyerHandler creates a new lawyer handler
func NewLawyerHandler(c *catalog.Catalog, suggestService *service.SuggestService, resolver *prompt.Resolver) *LawyerHandler {
	return &LawyerHandler{catalog: c, suggestService: suggestService, resolver: resolver}
}

// List returns the full lawyer persona catalog
func (h *LawyerHandler) List(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]any{
		"lawyers": h.catalog.All(),
	})
}

type suggestRequest struct {
	Notes string `json:"notes"`
}

// Suggest returns up to three catalog personas matched to the caller's notes
func (h *LawyerHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var input suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	suggestions := h.suggestService.Suggest(r.Context(), input.Notes)
	response.OK(w, map[string]any{
		"suggestions": suggestions,
	})
}

// Prompts returns the resolved prompt pair for a lawyer type, or the list of
// available types when no lawyerType is given.
func (h *LawyerHandler) Prompts(w http.ResponseWriter, r *http.Request) {
	lawyerType := r.URL.Query().Get("lawyerType")
	if lawyerType == "" {
		response.OK(w, map[string]any{
			"availableTypes": h.resolver.AvailableTypes(),
		})
		return
	}

	cfg := h.resolver.Resolve(lawyerType)
	response.OK(w, map[string]any{
		"lawyerType":   catalog.Normalize(lawyerType),
		"specialized":  h.resolver.HasSpecialized(lawyerType),
		"agentPrompt":  cfg.AgentPrompt,
		"reportPrompt": cfg.ReportPrompt,
	})
}
