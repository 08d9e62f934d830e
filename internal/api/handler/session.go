package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/nyaya-ai/legal-voice-api/internal/api/middleware"
	"github.com/nyaya-ai/legal-voice-api/internal/api/response"
	"github.com/nyaya-ai/legal-voice-api/internal/domain"
	"github.com/nyaya-ai/legal-voice-api/internal/service"
)

var validate = validator.New()

// SessionHandler handles consultation-session endpoints
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// sessionRequest is the POST /sessions body. Without an action it creates a
// session; with action "update-conversation" or "append-turn" it mutates the
// conversation of an existing one.
type sessionRequest struct {
	Action string `json:"action"`

	SessionID      string                `json:"sessionId"`
	Notes          string                `json:"notes"`
	SelectedLawyer *domain.LawyerPersona `json:"selectedLawyer"`
	Conversation   []domain.Turn         `json:"conversation"`

	// append-turn fields
	Role string `json:"role"`
	Text string `json:"text"`
}

// Save handles session creation and conversation updates
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	switch input.Action {
	case "update-conversation":
		h.updateConversation(w, r, input)
	case "append-turn":
		h.appendTurn(w, r, input)
	case "":
		h.create(w, r, identity, input)
	default:
		response.BadRequest(w, "unknown action: "+input.Action)
	}
}

func (h *SessionHandler) create(w http.ResponseWriter, r *http.Request, identity service.Identity, input sessionRequest) {
	session, err := h.sessionService.Create(r.Context(), identity, domain.SessionCreate{
		SessionID:      input.SessionID,
		Notes:          input.Notes,
		SelectedLawyer: input.SelectedLawyer,
		Conversation:   input.Conversation,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			response.Unauthorized(w, "unauthorized")
			return
		}
		log.Error().Err(err).Msg("failed to create session")
		response.InternalError(w, "Failed to save session", err.Error())
		return
	}

	response.Created(w, session)
}

func (h *SessionHandler) updateConversation(w http.ResponseWriter, r *http.Request, input sessionRequest) {
	if input.SessionID == "" {
		response.BadRequest(w, "sessionId is required")
		return
	}

	session, err := h.sessionService.UpdateConversation(r.Context(), input.SessionID, input.Conversation)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Session not found")
			return
		}
		log.Error().Err(err).Str("session_id", input.SessionID).Msg("failed to update conversation")
		response.InternalError(w, "Failed to save session", err.Error())
		return
	}

	response.OK(w, session)
}

func (h *SessionHandler) appendTurn(w http.ResponseWriter, r *http.Request, input sessionRequest) {
	if input.SessionID == "" || input.Text == "" {
		response.BadRequest(w, "sessionId and text are required")
		return
	}

	session, err := h.sessionService.AppendTurn(r.Context(), input.SessionID, input.Role, input.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Session not found")
			return
		}
		log.Error().Err(err).Str("session_id", input.SessionID).Msg("failed to append turn")
		response.InternalError(w, "Failed to save session", err.Error())
		return
	}

	response.OK(w, session)
}

// Get handles session retrieval: ?sessionId=all lists the caller's sessions,
// ?sessionId={id} fetches one.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" || sessionID == "all" {
		sessions, err := h.sessionService.ListByOwner(r.Context(), identity)
		if err != nil {
			// A listing failure degrades to an empty history rather than an
			// error page on the client.
			log.Error().Err(err).Str("owner", identity.Email).Msg("failed to list sessions")
			response.OK(w, []domain.ConsultationSession{})
			return
		}
		response.OK(w, sessions)
		return
	}

	session, err := h.sessionService.GetBySessionID(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Session not found")
			return
		}
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to get session")
		response.InternalError(w, "Failed to fetch session", err.Error())
		return
	}

	response.OK(w, session)
}
