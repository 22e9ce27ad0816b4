package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sokha-dev/staffportal/internal/domain"
	"github.com/sokha-dev/staffportal/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.HashService) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := &auth.HashService{}
	service := New(repo, hashService, auth.NewJWTService("test-secret", time.Hour))
	defer ctrl.Finish()
	return service, repo, hashService
}

func TestAuthenticate(t *testing.T) {
	service, repo, hashService := NewMock(t)

	hash, err := hashService.HashPassword("password123")
	assert.NoError(t, err)
	user := &domain.User{ID: 1, Username: "someone", PasswordHash: hash, Role: domain.RoleStaff}

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Valid credentials",
			username: "someone",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "someone").Return(user, nil)
			},
		},
		{
			name:     "Wrong password",
			username: "someone",
			password: "wrong",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "someone").Return(user, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Unknown user",
			username: "ghost",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Repository error",
			username: "someone",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "someone").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Authenticate(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, user, result)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _ := NewMock(t)

	token, err := service.GenerateToken(&domain.User{Username: "someone", Role: domain.RoleStaff})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestCreateUser(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		username      string
		role          domain.Role
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "New staff user",
			username: "newuser",
			role:     domain.RoleStaff,
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "newuser").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, "newuser", user.Username)
						assert.Equal(t, domain.RoleStaff, user.Role)
						assert.NotEqual(t, "password123", user.PasswordHash)
						user.ID = 2
						return user, nil
					})
			},
		},
		{
			name:          "Invalid role",
			username:      "newuser",
			role:          domain.Role("superuser"),
			prepareMock:   func() {},
			expectedError: ErrInvalidRole,
		},
		{
			name:     "Username taken",
			username: "existing",
			role:     domain.RoleStaff,
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "existing").Return(&domain.User{ID: 1}, nil)
			},
			expectedError: ErrUsernameTaken,
		},
		{
			name:     "Repository error",
			username: "newuser",
			role:     domain.RoleAdmin,
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "newuser").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.CreateUser(context.Background(), tt.username, "password123", tt.role)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestDeleteUser(t *testing.T) {
	service, repo, _ := NewMock(t)
	admin := &domain.User{ID: 1, Username: "boss", Role: domain.RoleAdmin}

	tests := []struct {
		name          string
		target        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Delete another user",
			target: "someone",
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), "someone").Return(true, nil)
			},
		},
		{
			name:          "Self delete is blocked before the repository",
			target:        "boss",
			prepareMock:   func() {},
			expectedError: ErrSelfDelete,
		},
		{
			name:   "Unknown user",
			target: "ghost",
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), "ghost").Return(false, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:   "Repository error",
			target: "someone",
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), "someone").Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.DeleteUser(context.Background(), admin, tt.target)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnsureAdmin(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Creates missing admin", func(t *testing.T) {
		repo.EXPECT().FindByUsername(gomock.Any(), "boss").Return(nil, nil)
		repo.EXPECT().FindByUsername(gomock.Any(), "boss").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, domain.RoleAdmin, user.Role)
				return user, nil
			})
		assert.NoError(t, service.EnsureAdmin(context.Background(), "boss", "bosspass"))
	})

	t.Run("Keeps existing admin untouched", func(t *testing.T) {
		repo.EXPECT().FindByUsername(gomock.Any(), "boss").Return(&domain.User{ID: 1, Username: "boss"}, nil)
		assert.NoError(t, service.EnsureAdmin(context.Background(), "boss", "bosspass"))
	})

	t.Run("Skips without credentials", func(t *testing.T) {
		assert.NoError(t, service.EnsureAdmin(context.Background(), "boss", ""))
	})
}

func TestListUsers(t *testing.T) {
	service, repo, _ := NewMock(t)

	users := []domain.User{{ID: 1, Username: "boss", Role: domain.RoleAdmin}}
	repo.EXPECT().List(gomock.Any()).Return(users, nil)

	result, err := service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, users, result)

	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))
	_, err = service.ListUsers(context.Background())
	assert.Error(t, err)
}
