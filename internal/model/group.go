package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Group represents a named collection of member users.
type Group struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Members []User `json:"members" gorm:"many2many:group_members"`
}

// BeforeCreate sets UUID before creating the record.
func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// GroupMember is the group membership join row. Member ids are stored as
// weak references: deleting a user does not cascade here.
type GroupMember struct {
	GroupID   uuid.UUID `json:"group_id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
