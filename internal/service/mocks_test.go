package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nyaya-ai/legal-voice-api/internal/domain"
	"github.com/nyaya-ai/legal-voice-api/internal/llm"
)

// MockSessionRepository mocks the SessionRepository interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.ConsultationSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.ConsultationSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsultationSession), args.Error(1)
}

func (m *MockSessionRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.ConsultationSession, error) {
	args := m.Called(ctx, ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsultationSession), args.Error(1)
}

func (m *MockSessionRepository) UpdateConversation(ctx context.Context, sessionID string, conversation []domain.Turn) (*domain.ConsultationSession, error) {
	args := m.Called(ctx, sessionID, conversation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsultationSession), args.Error(1)
}

func (m *MockSessionRepository) UpdateReport(ctx context.Context, sessionID string, report map[string]any, conversation []domain.Turn) error {
	args := m.Called(ctx, sessionID, report, conversation)
	return args.Error(0)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockProvider mocks the llm.Provider interface
type MockProvider struct {
	mock.Mock
	name string
}

func (m *MockProvider) Name() string {
	if m.name != "" {
		return m.name
	}
	return "mock"
}

func (m *MockProvider) AvailableModels() []string { return []string{"mock-1"} }

func (m *MockProvider) DefaultModel() string { return "mock-1" }

func (m *MockProvider) IsConfigured() bool { return true }

func (m *MockProvider) Generate(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	args := m.Called(ctx, req, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}

// MockReportCache mocks the ReportCache interface
type MockReportCache struct {
	mock.Mock
}

func (m *MockReportCache) Get(ctx context.Context, sessionID string) (map[string]any, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockReportCache) Set(ctx context.Context, sessionID string, report map[string]any) error {
	args := m.Called(ctx, sessionID, report)
	return args.Error(0)
}
