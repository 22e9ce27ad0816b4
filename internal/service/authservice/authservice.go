package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sokha-dev/staffportal/internal/domain"
	"github.com/sokha-dev/staffportal/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
}

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSelfDelete         = errors.New("cannot delete yourself")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user.Username, string(user.Role))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user created", zap.String("username", username), zap.String("role", string(role)))
	return newUser, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list users: ", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the named account. An admin may not delete the account
// they are authenticated as, which keeps at least that one admin reachable.
func (s *Service) DeleteUser(ctx context.Context, actor *domain.User, username string) error {
	if actor.Username == username {
		return ErrSelfDelete
	}
	deleted, err := s.userRepo.Delete(ctx, username)
	if err != nil {
		zap.L().Error("can't delete user: ", zap.Error(err))
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: user %q", domain.ErrNotFound, username)
	}
	zap.L().Info("user deleted", zap.String("username", username))
	return nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
// Nothing happens when it does, so a changed password in the environment never
// overwrites live credentials.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		zap.L().Warn("admin bootstrap skipped, no credentials configured")
		return nil
	}
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	_, err = s.CreateUser(ctx, username, password, domain.RoleAdmin)
	if err != nil {
		return err
	}
	zap.L().Info("bootstrap admin created", zap.String("username", username))
	return nil
}
