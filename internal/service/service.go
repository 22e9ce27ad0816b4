package service

import (
	"github.com/sokha-dev/staffportal/internal/handlers/auth"
	"github.com/sokha-dev/staffportal/internal/handlers/requests"
	"github.com/sokha-dev/staffportal/internal/handlers/users"

	pkgauth "github.com/sokha-dev/staffportal/pkg/auth"

	"github.com/sokha-dev/staffportal/internal/repo"
	authservice "github.com/sokha-dev/staffportal/internal/service/authservice"
	requestservice "github.com/sokha-dev/staffportal/internal/service/requestservice"
)

type Services struct {
	AuthService    auth.Service
	UserService    users.Service
	RequestService requests.Service

	// Admin is the concrete auth service, kept for startup-time account
	// bootstrap which is not part of any handler contract.
	Admin *authservice.Service
}

func New(repo *repo.Repositories, files requestservice.FileStore, jwtService pkgauth.JWTServiceInterface) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	requestService := requestservice.New(repo.RequestRepo, files)

	return &Services{
		AuthService:    authService,
		UserService:    authService,
		RequestService: requestService,
		Admin:          authService,
	}
}
