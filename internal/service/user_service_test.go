package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	httperrors "groupchat/internal/errors"
	"groupchat/internal/model"
)

func TestUserService_CreateManaged(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "creates user with given role",
			username: "bob",
			role:     model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "bob").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "duplicate username",
			username: "bob",
			role:     model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "bob").Return(&model.User{Username: "bob"}, nil)
			},
			expectedError: ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo)
			user, err := service.CreateManaged(context.Background(), tt.username, "password123", tt.role)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.role, user.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	userID := uuid.New()
	newName := "renamed"
	newPassword := "new-password"

	t.Run("updates whitelisted fields only", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdateFields", mock.Anything, userID, mock.MatchedBy(func(fields map[string]interface{}) bool {
			if fields["username"] != newName {
				return false
			}
			hash, ok := fields["password_hash"].(string)
			if !ok {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte(newPassword)) == nil
		})).Return(&model.User{ID: userID, Username: newName}, nil)

		service := NewUserService(mockRepo)
		user, err := service.UpdateUser(context.Background(), userID, UpdateUserInput{
			Username: &newName,
			Password: &newPassword,
		})

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, newName, user.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("absent user maps to not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdateFields", mock.Anything, userID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo)
		user, err := service.UpdateUser(context.Background(), userID, UpdateUserInput{Username: &newName})

		assert.Error(t, err)
		assert.Equal(t, httperrors.ErrUserNotFound, err)
		assert.Nil(t, user)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	t.Run("returns users", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("List", mock.Anything).Return([]model.User{
			{ID: uuid.New(), Username: "alice"},
			{ID: uuid.New(), Username: "bob"},
		}, nil)

		service := NewUserService(mockRepo)
		users, err := service.ListUsers(context.Background())

		assert.NoError(t, err)
		assert.Len(t, users, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty table", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("List", mock.Anything).Return([]model.User{}, nil)

		service := NewUserService(mockRepo)
		users, err := service.ListUsers(context.Background())

		assert.Error(t, err)
		assert.Equal(t, httperrors.ErrNoUsers, err)
		assert.Nil(t, users)
		mockRepo.AssertExpectations(t)
	})
}
