package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"groupchat/internal/model"
)

// MessageRepository defines message persistence operations. Messages are
// append-only: there is no update or delete.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error)
	AddLike(ctx context.Context, like *model.MessageLike) error
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(message).Error
}

// FindByID returns the message with its like set populated.
func (r *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).Preload("Likes").Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// AddLike records a like as a single conflict-ignoring insert. The composite
// primary key on (message_id, user_id) makes the call idempotent and keeps
// concurrent likes by different users from losing each other.
func (r *messageRepository) AddLike(ctx context.Context, like *model.MessageLike) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// ListByGroup returns the group's messages in insertion order with the
// author and like set populated.
func (r *messageRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Likes").
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
