// Package prompt resolves a lawyer specialist name to the prompt pair driving
// the live conversation and the report generation.
package prompt

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/nyaya-ai/legal-voice-api/internal/catalog"
)

// Config is the prompt pair for one persona.
type Config struct {
	AgentPrompt  string `json:"agentPrompt"`
	ReportPrompt string `json:"reportPrompt"`
}

// Resolver maps specialist names to prompt configs. The normalized map is
// built once at construction; a secondary cache keyed by the raw input string
// short-circuits repeated lookups without changing observable output.
type Resolver struct {
	catalog  *catalog.Catalog
	byKey    map[string]Config
	fallback Config

	mu    sync.RWMutex
	cache map[string]Config
}

// NewResolver builds a resolver over the given catalog.
func NewResolver(c *catalog.Catalog) *Resolver {
	r := &Resolver{
		catalog: c,
		byKey:   make(map[string]Config, len(c.All())),
		cache:   make(map[string]Config),
	}

	for _, p := range c.All() {
		r.byKey[catalog.Normalize(p.Specialist)] = Config{
			AgentPrompt:  p.AgentPrompt,
			ReportPrompt: specializedReportPrompt(p.AgentPrompt),
		}
	}

	if general, ok := r.byKey[catalog.GeneralLawyerKey]; ok {
		r.fallback = general
	} else {
		// Catalog misconfigured: no general lawyer. Keep a minimal pair so
		// report generation still has a prompt to work with.
		log.Warn().Msg("catalog has no general-lawyer persona, using minimal fallback prompt")
		r.fallback = Config{
			AgentPrompt:  fallbackAgentPrompt,
			ReportPrompt: defaultReportPrompt,
		}
	}

	return r
}

// Resolve returns the prompt pair for a specialist name. Empty or unknown
// names resolve to the general lawyer.
func (r *Resolver) Resolve(specialist string) Config {
	if specialist == "" {
		return r.fallback
	}

	r.mu.RLock()
	cached, ok := r.cache[specialist]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	cfg, ok := r.byKey[catalog.Normalize(specialist)]
	if !ok {
		log.Debug().Str("specialist", specialist).Msg("no specialized prompt, falling back to general lawyer")
		cfg = r.fallback
	}

	r.mu.Lock()
	r.cache[specialist] = cfg
	r.mu.Unlock()

	return cfg
}

// HasSpecialized reports whether the specialist has its own prompt entry.
func (r *Resolver) HasSpecialized(specialist string) bool {
	_, ok := r.byKey[catalog.Normalize(specialist)]
	return ok
}

// AvailableTypes returns the specialist names with prompt entries, in catalog
// order.
func (r *Resolver) AvailableTypes() []string {
	types := make([]string, 0, len(r.catalog.All()))
	for _, p := range r.catalog.All() {
		types = append(types, p.Specialist)
	}
	return types
}
