package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"groupchat/internal/cache"
	httperrors "groupchat/internal/errors"
	"groupchat/internal/model"
	"groupchat/internal/repository"
)

const groupCacheTTL = 5 * time.Minute

// UpdateGroupInput is the allowed field set for partial group updates.
// Members, when present, replace the whole membership set. The non-empty
// check applies at creation only.
type UpdateGroupInput struct {
	Name    *string
	Members *[]uuid.UUID
}

// GroupService handles group directory operations.
type GroupService interface {
	Create(ctx context.Context, name string, memberIDs []uuid.UUID) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Group, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateGroupInput) (*model.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type groupService struct {
	groupRepo repository.GroupRepository
	cache     *cache.Client
}

// NewGroupService creates a new group service.
func NewGroupService(groupRepo repository.GroupRepository, cache *cache.Client) GroupService {
	return &groupService{
		groupRepo: groupRepo,
		cache:     cache,
	}
}

func (s *groupService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("group:%s", id.String())
}

// Create persists a new group. Membership must be non-empty; member ids
// are stored as given, without an existence check.
func (s *groupService) Create(ctx context.Context, name string, memberIDs []uuid.UUID) (*model.Group, error) {
	if len(memberIDs) == 0 {
		return nil, httperrors.ErrInvalidMembers
	}
	group := &model.Group{Name: name}
	if err := s.groupRepo.Create(ctx, group, memberIDs); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

// List returns every group with members populated.
func (s *groupService) List(ctx context.Context) ([]model.Group, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	if len(groups) == 0 {
		return nil, httperrors.ErrNoGroups
	}
	return groups, nil
}

// GetByID retrieves a group by id with caching.
func (s *groupService) GetByID(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Group
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperrors.ErrGroupNotFoundByID
		}
		return nil, fmt.Errorf("get group: %w", err)
	}

	if payload, err := json.Marshal(group); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, groupCacheTTL)
	}
	return group, nil
}

// Update applies a whitelisted partial update and replaces the membership
// set when one is supplied.
func (s *groupService) Update(ctx context.Context, id uuid.UUID, input UpdateGroupInput) (*model.Group, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("get group: %w", err)
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if err := s.groupRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}
	if input.Members != nil {
		if err := s.groupRepo.ReplaceMembers(ctx, id, *input.Members); err != nil {
			return nil, fmt.Errorf("replace members: %w", err)
		}
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return group, nil
}

// Delete removes a group. Members are not notified and messages referencing
// the group stay in place.
func (s *groupService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.groupRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	if affected == 0 {
		return httperrors.ErrGroupNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
