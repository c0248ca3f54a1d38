package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	httperrors "groupchat/internal/errors"
	"groupchat/internal/model"
	"groupchat/internal/repository"
)

// MessageService handles the per-group message ledger.
type MessageService interface {
	Send(ctx context.Context, groupID, userID uuid.UUID, content string) (*model.Message, error)
	Like(ctx context.Context, messageID, userID uuid.UUID) (*model.Message, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]model.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService creates a new message service.
func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

// Send appends a message to the group's log. Group and author ids are
// stored as given; referential integrity is advisory here.
func (s *messageService) Send(ctx context.Context, groupID, userID uuid.UUID, content string) (*model.Message, error) {
	if content == "" {
		return nil, httperrors.ErrMissingFields
	}
	message := &model.Message{
		GroupID: groupID,
		UserID:  userID,
		Content: content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

// Like marks the message as liked by the user. Repeat calls by the same
// user are no-ops with the same success result.
func (s *messageService) Like(ctx context.Context, messageID, userID uuid.UUID) (*model.Message, error) {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("get message: %w", err)
	}

	like := &model.MessageLike{MessageID: messageID, UserID: userID}
	if err := s.messageRepo.AddLike(ctx, like); err != nil {
		return nil, fmt.Errorf("add like: %w", err)
	}
	return message, nil
}

// ListByGroup returns the group's messages in insertion order.
func (s *messageService) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]model.Message, error) {
	messages, err := s.messageRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if len(messages) == 0 {
		// The empty-listing message is shared with the group directory;
		// kept for wire compatibility with existing clients.
		return nil, httperrors.ErrNoGroups
	}
	return messages, nil
}
