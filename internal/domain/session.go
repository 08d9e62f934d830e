package domain

import (
	"context"
	"time"
)

// Turn roles as produced by the voice transcription pipeline.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance in a consultation conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ConsultationSession is one voice consultation: the conversation as it
// accumulates during the call, and the generated report once the call ends.
type ConsultationSession struct {
	ID             int            `json:"id"`
	SessionID      string         `json:"sessionId"`
	Notes          string         `json:"notes,omitempty"`
	SelectedLawyer *LawyerPersona `json:"selectedLawyer,omitempty"`
	Conversation   []Turn         `json:"conversation"`
	Report         map[string]any `json:"report,omitempty"`
	CreatedBy      string         `json:"createdBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// SessionCreate carries caller-supplied fields for a new session. SessionID is
// optional; the store assigns one when empty.
type SessionCreate struct {
	SessionID      string         `json:"sessionId"`
	Notes          string         `json:"notes"`
	SelectedLawyer *LawyerPersona `json:"selectedLawyer"`
	Conversation   []Turn         `json:"conversation"`
}

// SessionRepository defines session persistence. All writes touch a single row
// and refresh updated_at; there are no cross-row transactions.
type SessionRepository interface {
	Create(ctx context.Context, session *ConsultationSession) error
	GetBySessionID(ctx context.Context, sessionID string) (*ConsultationSession, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]ConsultationSession, error)
	UpdateConversation(ctx context.Context, sessionID string, conversation []Turn) (*ConsultationSession, error)
	UpdateReport(ctx context.Context, sessionID string, report map[string]any, conversation []Turn) error
}
