package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nyaya-ai/legal-voice-api/internal/domain"
)

// SessionRepository implements domain.SessionRepository
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, session_id, notes, selected_lawyer, conversation, report, created_by, created_at, updated_at`

func (r *SessionRepository) Create(ctx context.Context, session *domain.ConsultationSession) error {
	lawyer, err := marshalLawyer(session.SelectedLawyer)
	if err != nil {
		return fmt.Errorf("failed to marshal selected lawyer: %w", err)
	}
	conversation, err := marshalConversation(session.Conversation)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}

	query := `
		INSERT INTO consultation_sessions
			(session_id, notes, selected_lawyer, conversation, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = r.db.Pool.QueryRow(ctx, query,
		session.SessionID,
		nullableString(session.Notes),
		lawyer,
		conversation,
		session.CreatedBy,
		session.CreatedAt,
		session.UpdatedAt,
	).Scan(&session.ID)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.ConsultationSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM consultation_sessions
		WHERE session_id = $1
	`
	row := r.db.Pool.QueryRow(ctx, query, sessionID)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.ConsultationSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM consultation_sessions
		WHERE created_by = $1
		ORDER BY id DESC
	`
	rows, err := r.db.Pool.Query(ctx, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.ConsultationSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) UpdateConversation(ctx context.Context, sessionID string, conversation []domain.Turn) (*domain.ConsultationSession, error) {
	data, err := marshalConversation(conversation)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal conversation: %w", err)
	}

	query := `
		UPDATE consultation_sessions
		SET conversation = $1, updated_at = $2
		WHERE session_id = $3
		RETURNING ` + sessionColumns
	row := r.db.Pool.QueryRow(ctx, query, data, time.Now(), sessionID)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) UpdateReport(ctx context.Context, sessionID string, report map[string]any, conversation []domain.Turn) error {
	reportData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	var tag string
	if conversation != nil {
		convData, err := marshalConversation(conversation)
		if err != nil {
			return fmt.Errorf("failed to marshal conversation: %w", err)
		}
		query := `
			UPDATE consultation_sessions
			SET report = $1, conversation = $2, updated_at = $3
			WHERE session_id = $4
			RETURNING session_id
		`
		err = r.db.Pool.QueryRow(ctx, query, reportData, convData, time.Now(), sessionID).Scan(&tag)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to update report: %w", err)
		}
		return nil
	}

	query := `
		UPDATE consultation_sessions
		SET report = $1, updated_at = $2
		WHERE session_id = $3
		RETURNING session_id
	`
	err = r.db.Pool.QueryRow(ctx, query, reportData, time.Now(), sessionID).Scan(&tag)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update report: %w", err)
	}
	return nil
}

func scanSession(row pgx.Row) (*domain.ConsultationSession, error) {
	var (
		s            domain.ConsultationSession
		notes        *string
		lawyer       []byte
		conversation []byte
		report       []byte
	)
	if err := row.Scan(
		&s.ID,
		&s.SessionID,
		&notes,
		&lawyer,
		&conversation,
		&report,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if notes != nil {
		s.Notes = *notes
	}
	if len(lawyer) > 0 {
		if err := json.Unmarshal(lawyer, &s.SelectedLawyer); err != nil {
			return nil, fmt.Errorf("failed to unmarshal selected lawyer: %w", err)
		}
	}
	s.Conversation = []domain.Turn{}
	if len(conversation) > 0 {
		if err := json.Unmarshal(conversation, &s.Conversation); err != nil {
			return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
		}
	}
	if len(report) > 0 {
		if err := json.Unmarshal(report, &s.Report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
	}
	return &s, nil
}

func marshalConversation(turns []domain.Turn) ([]byte, error) {
	if turns == nil {
		turns = []domain.Turn{}
	}
	return json.Marshal(turns)
}

func marshalLawyer(l *domain.LawyerPersona) ([]byte, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
