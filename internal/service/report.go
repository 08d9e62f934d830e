package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nyaya-ai/legal-voice-api/internal/domain"
	"github.com/nyaya-ai/legal-voice-api/internal/llm"
	"github.com/nyaya-ai/legal-voice-api/internal/prompt"
	"github.com/nyaya-ai/legal-voice-api/internal/report"
	"github.com/nyaya-ai/legal-voice-api/internal/transcript"
)

// Status tags which path of the synthesis pipeline produced the report. Every
// status carries a complete, schema-conformant report; only the diagnostics
// differ. The transport layer encodes all of them as HTTP 200 so the client
// always has a renderable body.
type Status string

const (
	// StatusGenerated: model output parsed cleanly.
	StatusGenerated Status = "generated"
	// StatusPartial: JSON recovered from a {...} span inside free text.
	StatusPartial Status = "partial"
	// StatusParseFallback: model output unusable, default template returned.
	StatusParseFallback Status = "parse_fallback"
	// StatusBackendFallback: the generation call itself failed.
	StatusBackendFallback Status = "backend_fallback"
)

// Result is the typed outcome of one synthesis.
type Result struct {
	Report report.Report
	Status Status
}

// Degraded reports whether the pipeline fell back past normal parsing.
func (r *Result) Degraded() bool {
	return r.Status == StatusParseFallback || r.Status == StatusBackendFallback
}

// ReportCache is the optional read-through cache for generated reports.
type ReportCache interface {
	Get(ctx context.Context, sessionID string) (map[string]any, error)
	Set(ctx context.Context, sessionID string, report map[string]any) error
}

// SynthesizeRequest carries one report-generation request.
type SynthesizeRequest struct {
	SessionID     string
	SessionDetail *domain.ConsultationSession
	Messages      []domain.Turn
	Duration      string
}

const (
	summaryPreviewLimit = 200
	rawResponseLimit    = 500
)

// ReportService turns a consultation transcript into a persisted legal report.
type ReportService struct {
	sessions    domain.SessionRepository
	resolver    *prompt.Resolver
	llmRouter   *llm.Router
	cache       ReportCache
	temperature float64
	maxTokens   int
}

// NewReportService creates a new report service. cache may be nil.
func NewReportService(
	sessions domain.SessionRepository,
	resolver *prompt.Resolver,
	llmRouter *llm.Router,
	cache ReportCache,
	temperature float64,
	maxTokens int,
) *ReportService {
	if maxTokens <= 0 {
		maxTokens = 4000
	}
	return &ReportService{
		sessions:    sessions,
		resolver:    resolver,
		llmRouter:   llmRouter,
		cache:       cache,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Synthesize runs the full pipeline: resolve the persona prompt, invoke the
// generation backend once, repair the response, back-fill the schema, persist
// and return. Only a missing sessionId is an error; every downstream failure
// degrades to a flagged fallback report.
func (s *ReportService) Synthesize(ctx context.Context, req SynthesizeRequest) (*Result, error) {
	if req.SessionID == "" {
		return nil, domain.ErrInvalidRequest
	}

	specialist := s.lookupSpecialist(ctx, req)
	promptCfg := s.resolver.Resolve(specialist)

	lawyerName := specialist
	if lawyerName == "" {
		lawyerName = "AI Legal Assistant"
	}

	formatted := transcript.Format(req.Messages)
	duration := req.Duration
	if duration == "" {
		duration = transcript.EstimateDuration(formatted.TotalTurns)
	}
	fallbacks := report.Fallbacks{Duration: duration}

	provider, err := s.llmRouter.GetProvider("")
	if err != nil {
		return s.backendFallback(ctx, req, fallbacks, err), nil
	}

	genReq := llm.Request{
		System:      systemInstruction(lawyerName, promptCfg.ReportPrompt),
		User:        userInstruction(req.SessionID, lawyerName, duration, formatted),
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	}

	resp, err := provider.Generate(ctx, genReq, "")
	if err != nil {
		log.Error().Err(err).Str("session_id", req.SessionID).Msg("report generation backend failed")
		return s.backendFallback(ctx, req, fallbacks, err), nil
	}

	parsed, stage := report.ExtractJSON(resp.Content)

	var (
		final  report.Report
		status Status
	)
	switch stage {
	case report.StageDirect:
		final = report.Backfill(req.SessionID, parsed, fallbacks)
		final["generatedByLLM"] = true
		status = StatusGenerated
	case report.StageBraces:
		final = report.Backfill(req.SessionID, parsed, fallbacks)
		final["generatedByLLM"] = true
		final["partialParse"] = true
		status = StatusPartial
	default:
		log.Warn().Str("session_id", req.SessionID).Msg("could not extract JSON from model response")
		final = report.Backfill(req.SessionID, report.Report{
			"summary":     "Legal consultation completed. " + truncate(resp.Content, summaryPreviewLimit),
			"parseError":  "Failed to fully parse LLM response",
			"rawResponse": truncate(resp.Content, rawResponseLimit),
		}, fallbacks)
		status = StatusParseFallback
	}
	final["messageCount"] = formatted.TotalTurns

	s.persist(ctx, req.SessionID, final, req.Messages)

	return &Result{Report: final, Status: status}, nil
}

// GetReport returns the latest persisted report for a session, preferring the
// cache when one is configured.
func (s *ReportService) GetReport(ctx context.Context, sessionID string) (report.Report, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidRequest
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, sessionID); err == nil && cached != nil {
			return cached, nil
		}
	}

	session, err := s.sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Report == nil {
		return nil, domain.ErrNotFound
	}
	return session.Report, nil
}

// lookupSpecialist prefers the caller-supplied session detail, then the
// stored session; unknown resolves to the general lawyer downstream.
func (s *ReportService) lookupSpecialist(ctx context.Context, req SynthesizeRequest) string {
	if req.SessionDetail != nil && req.SessionDetail.SelectedLawyer != nil {
		return req.SessionDetail.SelectedLawyer.Specialist
	}

	session, err := s.sessions.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		log.Debug().Err(err).Str("session_id", req.SessionID).Msg("could not load session for lawyer type")
		return ""
	}
	if session.SelectedLawyer != nil {
		return session.SelectedLawyer.Specialist
	}
	return ""
}

// backendFallback builds, persists and returns the degraded report for a
// failed generation call. Persistence failure here is logged and swallowed so
// the caller still receives a renderable body.
func (s *ReportService) backendFallback(ctx context.Context, req SynthesizeRequest, fb report.Fallbacks, cause error) *Result {
	final := report.Backfill(req.SessionID, report.Report{
		"error":          "Failed to generate report due to server error",
		"errorDetails":   cause.Error(),
		"generatedByLLM": false,
		"fallbackUsed":   true,
	}, fb)

	s.persist(ctx, req.SessionID, final, req.Messages)

	return &Result{Report: final, Status: StatusBackendFallback}
}

// persist writes the report (and conversation) and refreshes the cache. A
// store failure never propagates; a retried synthesis fully overwrites.
func (s *ReportService) persist(ctx context.Context, sessionID string, final report.Report, conversation []domain.Turn) {
	if err := s.sessions.UpdateReport(ctx, sessionID, final, conversation); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to persist report")
		return
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, sessionID, final); err != nil {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to cache report")
		}
	}
}

func systemInstruction(lawyerName, reportPrompt string) string {
	return fmt.Sprintf(`CRITICAL INSTRUCTIONS:
- You MUST analyze the ENTIRE conversation transcript provided
- Extract information from ALL messages, not just the first few
- The conversation may be long - read through everything before generating the report
- Be thorough and comprehensive in your analysis
- Generate a detailed, professional legal consultation report
- Focus on %s specialization context
- Output ONLY valid JSON with no markdown formatting

%s`, lawyerName, reportPrompt)
}

func userInstruction(sessionID, lawyerName, duration string, f transcript.Formatted) string {
	return fmt.Sprintf(`=== CONSULTATION DETAILS ===
Session ID: %s
Lawyer Type: %s
Duration: %s
Total Messages: %d (Client: %d, Lawyer: %d)

=== COMPLETE CONVERSATION TRANSCRIPT ===
%s

=== TASK ===
Analyze the ENTIRE conversation above and generate a comprehensive legal consultation report. Extract all relevant information including discussion points, decisions, advice, concerns, risks, documents, and next steps. Be thorough and detailed.`,
		sessionID, lawyerName, duration, f.TotalTurns, f.UserTurns, f.AssistantTurns, f.Text)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
