package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nyaya-ai/legal-voice-api/internal/domain"
	"github.com/nyaya-ai/legal-voice-api/internal/transcript"
)

// Identity is the authenticated caller, resolved by the auth middleware from
// a token minted by the external identity provider.
type Identity struct {
	Email string
	Name  string
}

// SessionService handles consultation session lifecycle.
type SessionService struct {
	sessions domain.SessionRepository
	users    domain.UserRepository
}

// NewSessionService creates a new session service
func NewSessionService(sessions domain.SessionRepository, users domain.UserRepository) *SessionService {
	return &SessionService{sessions: sessions, users: users}
}

// Create starts a new consultation session for the owner, provisioning the
// user row on first contact. A caller-supplied sessionId is honored; otherwise
// a fresh one is generated.
func (s *SessionService) Create(ctx context.Context, owner Identity, req domain.SessionCreate) (*domain.ConsultationSession, error) {
	if owner.Email == "" {
		return nil, domain.ErrNotAuthenticated
	}

	if err := s.ensureUser(ctx, owner); err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	conversation := req.Conversation
	if conversation == nil {
		conversation = []domain.Turn{}
	}

	now := time.Now()
	session := &domain.ConsultationSession{
		SessionID:      sessionID,
		Notes:          req.Notes,
		SelectedLawyer: req.SelectedLawyer,
		Conversation:   conversation,
		CreatedBy:      owner.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// ensureUser provisions a default user row for the owner. Two concurrent
// requests may both attempt the insert; the loser treats the uniqueness
// violation as success and re-reads.
func (s *SessionService) ensureUser(ctx context.Context, owner Identity) error {
	_, err := s.users.GetByEmail(ctx, owner.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	name := owner.Name
	if name == "" {
		name = "User"
	}
	createErr := s.users.Create(ctx, &domain.User{
		Name:    name,
		Email:   owner.Email,
		Credits: domain.DefaultCredits,
	})
	if createErr == nil {
		return nil
	}
	if errors.Is(createErr, domain.ErrAlreadyExists) {
		log.Debug().Str("email", owner.Email).Msg("user provisioned concurrently")
		if _, err := s.users.GetByEmail(ctx, owner.Email); err != nil {
			return domain.ErrOwnerNotProvisioned
		}
		return nil
	}
	return fmt.Errorf("failed to provision user: %w", createErr)
}

// UpdateConversation replaces the stored conversation wholesale; the caller
// is the source of truth, not an append-only log.
func (s *SessionService) UpdateConversation(ctx context.Context, sessionID string, conversation []domain.Turn) (*domain.ConsultationSession, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.sessions.UpdateConversation(ctx, sessionID, conversation)
}

// AppendTurn applies the live-transcription merge rule server-side: a final
// fragment with the same role as the last stored turn extends it rather than
// adding a new turn.
func (s *SessionService) AppendTurn(ctx context.Context, sessionID, role, text string) (*domain.ConsultationSession, error) {
	if sessionID == "" || text == "" {
		return nil, domain.ErrInvalidRequest
	}

	session, err := s.sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := transcript.Merge(session.Conversation, role, text)
	return s.sessions.UpdateConversation(ctx, sessionID, merged)
}

// GetBySessionID returns one session.
func (s *SessionService) GetBySessionID(ctx context.Context, sessionID string) (*domain.ConsultationSession, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.sessions.GetBySessionID(ctx, sessionID)
}

// ListByOwner returns the owner's sessions, newest first.
func (s *SessionService) ListByOwner(ctx context.Context, owner Identity) ([]domain.ConsultationSession, error) {
	if owner.Email == "" {
		return nil, domain.ErrNotAuthenticated
	}
	sessions, err := s.sessions.ListByOwner(ctx, owner.Email)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []domain.ConsultationSession{}
	}
	return sessions, nil
}
