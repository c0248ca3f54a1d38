package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"groupchat/internal/model"
)

// GroupRepository defines group persistence operations. Membership rows are
// written directly; member ids are not checked against the user table.
type GroupRepository interface {
	Create(ctx context.Context, group *model.Group, memberIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	ReplaceMembers(ctx context.Context, id uuid.UUID, memberIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// Create persists the group and its membership rows in one transaction.
func (r *groupRepository) Create(ctx context.Context, group *model.Group, memberIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(group).Error; err != nil {
			return err
		}
		members := make([]model.GroupMember, 0, len(memberIDs))
		for _, userID := range memberIDs {
			members = append(members, model.GroupMember{GroupID: group.ID, UserID: userID})
		}
		return tx.Create(&members).Error
	})
}

// FindByID returns the group with members populated.
func (r *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).Preload("Members").Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// List returns all groups with members populated.
func (r *groupRepository) List(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.WithContext(ctx).Preload("Members").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Group{}).Where("id = ?", id).Updates(fields).Error
}

// ReplaceMembers swaps the membership set for the group.
func (r *groupRepository) ReplaceMembers(ctx context.Context, id uuid.UUID, memberIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&model.GroupMember{}).Error; err != nil {
			return err
		}
		if len(memberIDs) == 0 {
			return nil
		}
		members := make([]model.GroupMember, 0, len(memberIDs))
		for _, userID := range memberIDs {
			members = append(members, model.GroupMember{GroupID: id, UserID: userID})
		}
		return tx.Create(&members).Error
	})
}

// Delete removes the group record and reports affected rows. Membership
// rows go with it; messages are left untouched.
func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Group{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		return tx.Where("group_id = ?", id).Delete(&model.GroupMember{}).Error
	})
	return affected, err
}
