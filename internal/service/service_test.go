package service

import (
	"testing"
	"time"

	"github.com/sokha-dev/staffportal/internal/repo"
	"github.com/sokha-dev/staffportal/internal/service/authservice"
	"github.com/sokha-dev/staffportal/internal/service/requestservice"
	pkgauth "github.com/sokha-dev/staffportal/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockRequestRepo := requestservice.NewMockRepo(ctrl)
	mockFiles := requestservice.NewMockFileStore(ctrl)

	repos := &repo.Repositories{
		UserRepo:    mockUserRepo,
		RequestRepo: mockRequestRepo,
	}

	services := New(repos, mockFiles, pkgauth.NewJWTService("test-secret", time.Hour))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.RequestService)
	assert.NotNil(t, services.Admin)
	assert.Same(t, services.Admin, services.AuthService)
}
