package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httperrors "groupchat/internal/errors"
	"groupchat/internal/model"
)

// MockMessageService is a mock implementation of MessageService.
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Send(ctx context.Context, groupID, userID uuid.UUID, content string) (*model.Message, error) {
	args := m.Called(ctx, groupID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageService) Like(ctx context.Context, messageID, userID uuid.UUID) (*model.Message, error) {
	args := m.Called(ctx, messageID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageService) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]model.Message, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func TestMessageHandler_SendMessage_MissingFields(t *testing.T) {
	mockService := new(MockMessageService)
	h := NewMessageHandler(mockService)

	e := newTestEcho()
	e.POST("/api/messages", h.SendMessage)

	body := `{"groupId":"` + uuid.New().String() + `","content":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Missing required fields"}`, rec.Body.String())
	mockService.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageHandler_LikeMessage_AbsentMessage(t *testing.T) {
	messageID := uuid.New()
	userID := uuid.New()

	mockService := new(MockMessageService)
	mockService.On("Like", mock.Anything, messageID, userID).Return(nil, httperrors.ErrMessageNotFound)

	h := NewMessageHandler(mockService)
	e := newTestEcho()
	e.POST("/api/messages/:id/like", h.LikeMessage)

	body := `{"userId":"` + userID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages/"+messageID.String()+"/like", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Message not found"}`, rec.Body.String())
	mockService.AssertExpectations(t)
}

func TestMessageHandler_ListGroupMessages_StripsPasswordHash(t *testing.T) {
	groupID := uuid.New()
	likerID := uuid.New()
	messageID := uuid.New()

	mockService := new(MockMessageService)
	mockService.On("ListByGroup", mock.Anything, groupID).Return([]model.Message{
		{
			ID:      messageID,
			GroupID: groupID,
			Content: "hello",
			User: model.User{
				ID:           uuid.New(),
				Username:     "alice",
				PasswordHash: "$2a$10$secret-hash",
				Role:         model.RoleUser,
			},
			Likes: []model.MessageLike{
				{MessageID: messageID, UserID: likerID},
			},
		},
	}, nil)

	h := NewMessageHandler(mockService)
	e := newTestEcho()
	e.GET("/api/messages/group/:groupId", h.ListGroupMessages)

	req := httptest.NewRequest(http.MethodGet, "/api/messages/group/"+groupID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), likerID.String())
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	mockService.AssertExpectations(t)
}
