package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nyaya-ai/legal-voice-api/internal/domain"
)

var owner = Identity{Email: "client@example.com", Name: "Client"}

func TestCreateRequiresEmail(t *testing.T) {
	svc := NewSessionService(new(MockSessionRepository), new(MockUserRepository))

	_, err := svc.Create(context.Background(), Identity{}, domain.SessionCreate{})
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestCreateProvisionsUserAndGeneratesID(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, owner.Email).Return(nil, domain.ErrNotFound).Once()
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == owner.Email && u.Credits == domain.DefaultCredits
	})).Return(nil).Once()

	sessions := new(MockSessionRepository)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewSessionService(sessions, users)

	session, err := svc.Create(context.Background(), owner, domain.SessionCreate{Notes: "eviction"})
	require.NoError(t, err)

	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, owner.Email, session.CreatedBy)
	assert.NotNil(t, session.Conversation)
	assert.Empty(t, session.Conversation)
	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestCreateHonorsSuppliedSessionID(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, owner.Email).Return(&domain.User{Email: owner.Email}, nil)

	sessions := new(MockSessionRepository)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewSessionService(sessions, users)

	session, err := svc.Create(context.Background(), owner, domain.SessionCreate{SessionID: "caller-chosen"})
	require.NoError(t, err)
	assert.Equal(t, "caller-chosen", session.SessionID)
}

func TestCreateToleratesProvisioningRace(t *testing.T) {
	users := new(MockUserRepository)
	// First read misses, insert loses the race, re-read succeeds.
	users.On("GetByEmail", mock.Anything, owner.Email).Return(nil, domain.ErrNotFound).Once()
	users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists).Once()
	users.On("GetByEmail", mock.Anything, owner.Email).Return(&domain.User{Email: owner.Email}, nil).Once()

	sessions := new(MockSessionRepository)
	sessions.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewSessionService(sessions, users)

	_, err := svc.Create(context.Background(), owner, domain.SessionCreate{})
	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestCreateRaceWithoutWinnerFails(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, owner.Email).Return(nil, domain.ErrNotFound).Once()
	users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists).Once()
	users.On("GetByEmail", mock.Anything, owner.Email).Return(nil, domain.ErrNotFound).Once()

	svc := NewSessionService(new(MockSessionRepository), users)

	_, err := svc.Create(context.Background(), owner, domain.SessionCreate{})
	assert.ErrorIs(t, err, domain.ErrOwnerNotProvisioned)
}

func TestCreateSurfacesStoreFailure(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, owner.Email).Return(&domain.User{Email: owner.Email}, nil)

	sessions := new(MockSessionRepository)
	sessions.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	svc := NewSessionService(sessions, users)

	_, err := svc.Create(context.Background(), owner, domain.SessionCreate{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestAppendTurnMergesSameRole(t *testing.T) {
	existing := &domain.ConsultationSession{
		SessionID: "sess-1",
		Conversation: []domain.Turn{
			{Role: domain.RoleUser, Text: "My landlord"},
		},
	}

	sessions := new(MockSessionRepository)
	sessions.On("GetBySessionID", mock.Anything, "sess-1").Return(existing, nil)
	sessions.On("UpdateConversation", mock.Anything, "sess-1", []domain.Turn{
		{Role: domain.RoleUser, Text: "My landlord evicted me"},
	}).Return(existing, nil)

	svc := NewSessionService(sessions, new(MockUserRepository))

	_, err := svc.AppendTurn(context.Background(), "sess-1", domain.RoleUser, "evicted me")
	require.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestUpdateConversationRequiresSessionID(t *testing.T) {
	svc := NewSessionService(new(MockSessionRepository), new(MockUserRepository))

	_, err := svc.UpdateConversation(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestListByOwnerNeverReturnsNil(t *testing.T) {
	sessions := new(MockSessionRepository)
	sessions.On("ListByOwner", mock.Anything, owner.Email).Return([]domain.ConsultationSession(nil), nil)

	svc := NewSessionService(sessions, new(MockUserRepository))

	list, err := svc.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
