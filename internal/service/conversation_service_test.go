package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/service"
	"brokerdoc/mocks"
)

func TestConversationService_Create(t *testing.T) {
	convRepo := new(mocks.MockConversationRepo)
	msgRepo := new(mocks.MockMessageRepo)
	svc := service.NewConversationService(convRepo, msgRepo)
	userID := uuid.New()

	convRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Conversation")).Return(nil)

	conv, err := svc.Create(context.Background(), userID, "Offer for 123 Main St")

	require.NoError(t, err)
	assert.Equal(t, userID, conv.UserID)
	assert.Equal(t, "Offer for 123 Main St", conv.Title)
	assert.NotEqual(t, uuid.Nil, conv.ID)
}

func TestConversationService_Create_DefaultTitle(t *testing.T) {
	convRepo := new(mocks.MockConversationRepo)
	svc := service.NewConversationService(convRepo, new(mocks.MockMessageRepo))

	convRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	conv, err := svc.Create(context.Background(), uuid.New(), "")

	require.NoError(t, err)
	assert.Equal(t, "New Conversation", conv.Title)
}

func TestConversationService_Messages(t *testing.T) {
	convRepo := new(mocks.MockConversationRepo)
	msgRepo := new(mocks.MockMessageRepo)
	svc := service.NewConversationService(convRepo, msgRepo)
	userID, convID := uuid.New(), uuid.New()

	convRepo.On("GetByID", mock.Anything, userID, convID).
		Return(&domain.Conversation{ID: convID, UserID: userID}, nil)
	msgRepo.On("ListByConversation", mock.Anything, convID, 100).Return([]domain.Message{
		{Role: domain.RoleUser, Content: "hello"},
		{Role: domain.RoleAssistant, Content: "hi"},
	}, nil)

	msgs, err := svc.Messages(context.Background(), userID, convID, 100)

	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestConversationService_Messages_NotOwned(t *testing.T) {
	convRepo := new(mocks.MockConversationRepo)
	msgRepo := new(mocks.MockMessageRepo)
	svc := service.NewConversationService(convRepo, msgRepo)
	userID, convID := uuid.New(), uuid.New()

	convRepo.On("GetByID", mock.Anything, userID, convID).
		Return(nil, domain.ErrConversationNotFound)

	_, err := svc.Messages(context.Background(), userID, convID, 100)

	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
	msgRepo.AssertNotCalled(t, "ListByConversation", mock.Anything, mock.Anything, mock.Anything)
}

func TestConversationService_Delete(t *testing.T) {
	convRepo := new(mocks.MockConversationRepo)
	svc := service.NewConversationService(convRepo, new(mocks.MockMessageRepo))
	userID, convID := uuid.New(), uuid.New()

	convRepo.On("Delete", mock.Anything, userID, convID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), userID, convID))
	convRepo.AssertExpectations(t)
}
