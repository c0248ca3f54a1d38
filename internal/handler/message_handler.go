package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	httperrors "groupchat/internal/errors"
	"groupchat/internal/model"
	"groupchat/internal/service"
)

// MessageHandler handles message ledger endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents a new message.
type SendMessageRequest struct {
	GroupID string `json:"groupId"`
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

// LikeMessageRequest represents a like by a user.
type LikeMessageRequest struct {
	UserID string `json:"userId"`
}

// MessageIDResponse carries a confirmation message and the affected message id.
type MessageIDResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// MessageResponse is a message with its author populated and likes listed
// as user ids.
type MessageResponse struct {
	ID        uuid.UUID   `json:"id"`
	GroupID   uuid.UUID   `json:"group_id"`
	User      model.User  `json:"user"`
	Content   string      `json:"content"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// SendMessage godoc
// @Summary Send a message to a group
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message data"
// @Success 201 {object} MessageIDResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.GroupID == "" || req.UserID == "" || req.Content == "" {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrMissingFields)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	message, err := h.messageService.Send(c.Request().Context(), groupID, userID, req.Content)
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	return c.JSON(http.StatusCreated, MessageIDResponse{
		Message: "Messages Sent Successfully",
		ID:      message.ID,
	})
}

// LikeMessage godoc
// @Summary Like a message (idempotent per user)
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body LikeMessageRequest true "Liking user"
// @Success 201 {object} MessageIDResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /messages/{id}/like [post]
func (h *MessageHandler) LikeMessage(c echo.Context) error {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	var req LikeMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrMissingFields)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	message, err := h.messageService.Like(c.Request().Context(), messageID, userID)
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	return c.JSON(http.StatusCreated, MessageIDResponse{
		Message: "Messages Sent Successfully",
		ID:      message.ID,
	})
}

// ListGroupMessages godoc
// @Summary List a group's messages in insertion order
// @Tags messages
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {array} MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /messages/group/{groupId} [get]
func (h *MessageHandler) ListGroupMessages(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	messages, err := h.messageService.ListByGroup(c.Request().Context(), groupID)
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	resp := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, MessageResponse{
			ID:        m.ID,
			GroupID:   m.GroupID,
			User:      m.User,
			Content:   m.Content,
			Likes:     m.LikedBy(),
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
