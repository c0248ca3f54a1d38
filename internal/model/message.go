package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is one entry in a group's append-only message log. Messages are
// never edited or deleted; GroupID and UserID are weak references.
type Message struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	GroupID   uuid.UUID `json:"group_id" gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User  User          `json:"-" gorm:"foreignKey:UserID"`
	Likes []MessageLike `json:"likes" gorm:"foreignKey:MessageID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// LikedBy returns the ids of users who liked the message.
func (m *Message) LikedBy() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m.Likes))
	for _, like := range m.Likes {
		ids = append(ids, like.UserID)
	}
	return ids
}

// MessageLike marks that a user liked a message. The composite primary key
// makes a like unique per user, so inserting one is a natural add-to-set.
type MessageLike struct {
	MessageID uuid.UUID `json:"message_id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
