package handler

import (
	"net/http"

	"github.com/nyaya-ai/legal-voice-api/internal/api/response"
	"github.com/nyaya-ai/legal-voice-api/internal/llm"
)

// ListLLMProviders returns the registered generation backends
func ListLLMProviders(router *llm.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]any{
			"providers":       router.GetProvidersInfo(),
			"defaultProvider": router.DefaultProvider(),
		})
	}
}
