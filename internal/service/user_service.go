package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	httperrors "groupchat/internal/errors"
	"groupchat/internal/model"
	"groupchat/internal/repository"
)

// UpdateUserInput is the allowed field set for partial user updates.
// Anything outside it is dropped at the handler boundary.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *string
}

// UserService exposes admin-managed user operations.
type UserService interface {
	CreateManaged(ctx context.Context, username, password, role string) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService builds a UserService over the user repository.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateManaged creates a user on behalf of an admin. Same hashing path as
// registration; the role is taken as given.
func (s *userService) CreateManaged(ctx context.Context, username, password, role string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if role == "" {
		role = model.RoleUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// UpdateUser applies a whitelisted partial update. A password, when
// present, is re-hashed before storage.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error) {
	fields := map[string]interface{}{}
	if input.Username != nil {
		fields["username"] = *input.Username
	}
	if input.Role != nil {
		fields["role"] = *input.Role
	}
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password_hash"] = string(hashedPassword)
	}

	user, err := s.userRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// ListUsers returns every user. Password hashes never serialize, so the
// listing is safe to hand to callers as-is.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return nil, httperrors.ErrNoUsers
	}
	return users, nil
}
