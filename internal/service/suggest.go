package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nyaya-ai/legal-voice-api/internal/catalog"
	"github.com/nyaya-ai/legal-voice-api/internal/domain"
	"github.com/nyaya-ai/legal-voice-api/internal/llm"
)

const maxSuggestions = 3

// SuggestService matches a client's intake notes to lawyer personas. It never
// fails: any backend or parse problem degrades to the leading catalog entries.
type SuggestService struct {
	catalog   *catalog.Catalog
	llmRouter *llm.Router
}

// NewSuggestService creates a new suggestion service
func NewSuggestService(c *catalog.Catalog, llmRouter *llm.Router) *SuggestService {
	return &SuggestService{catalog: c, llmRouter: llmRouter}
}

// Suggest returns up to three personas matching the notes.
func (s *SuggestService) Suggest(ctx context.Context, notes string) []domain.LawyerPersona {
	if strings.TrimSpace(notes) == "" {
		return s.fallback()
	}

	provider, err := s.llmRouter.GetProvider("")
	if err != nil {
		log.Warn().Err(err).Msg("no provider for lawyer suggestion")
		return s.fallback()
	}

	catalogJSON, err := json.Marshal(s.catalog.All())
	if err != nil {
		return s.fallback()
	}

	resp, err := provider.Generate(ctx, llm.Request{
		System: fmt.Sprintf(`You are a legal assistant helping to match client needs with appropriate lawyers. Here is the list of available lawyers: %s

CRITICAL INSTRUCTIONS:
- Respond ONLY with a valid JSON array
- Do NOT include markdown code blocks
- Do NOT include any explanations
- Each lawyer object must include at least the fields: id, specialist`, catalogJSON),
		User:        fmt.Sprintf("User Notes/Issue: %s. Based on these notes, suggest 2-3 lawyers from the provided list that best match. Return ONLY the JSON array of lawyer objects.", notes),
		Temperature: 0.3,
		MaxTokens:   2048,
	}, "")
	if err != nil {
		log.Warn().Err(err).Msg("lawyer suggestion generation failed")
		return s.fallback()
	}

	content := strings.ReplaceAll(resp.Content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	var suggested []struct {
		ID         int    `json:"id"`
		Specialist string `json:"specialist"`
	}
	if err := json.Unmarshal([]byte(content), &suggested); err != nil {
		log.Warn().Err(err).Msg("could not parse lawyer suggestions")
		return s.fallback()
	}
	if len(suggested) == 0 {
		return s.fallback()
	}
	if len(suggested) > maxSuggestions {
		suggested = suggested[:maxSuggestions]
	}

	// Re-anchor every suggestion to the canonical catalog entry so truncated
	// or paraphrased prompts from the model never leak into responses.
	all := s.catalog.All()
	personas := make([]domain.LawyerPersona, 0, len(suggested))
	for i, item := range suggested {
		if p, ok := s.catalog.ByID(item.ID); ok {
			personas = append(personas, *p)
			continue
		}
		if p, ok := s.catalog.BySpecialist(item.Specialist); ok {
			personas = append(personas, *p)
			continue
		}
		if i < len(all) {
			personas = append(personas, all[i])
		}
	}
	if len(personas) == 0 {
		return s.fallback()
	}
	return personas
}

func (s *SuggestService) fallback() []domain.LawyerPersona {
	all := s.catalog.All()
	if len(all) > maxSuggestions {
		all = all[:maxSuggestions]
	}
	return append([]domain.LawyerPersona(nil), all...)
}
