package repo

import (
	"github.com/sokha-dev/staffportal/internal/janitor"
	"github.com/sokha-dev/staffportal/internal/pg"
	requestrepo "github.com/sokha-dev/staffportal/internal/repo/request-repo"
	sequencerepo "github.com/sokha-dev/staffportal/internal/repo/sequence-repo"
	userrepo "github.com/sokha-dev/staffportal/internal/repo/user-repo"
	"github.com/sokha-dev/staffportal/internal/service/authservice"
	"github.com/sokha-dev/staffportal/internal/service/requestservice"
)

type Repositories struct {
	UserRepo    authservice.Repo
	RequestRepo requestservice.Repo
	Sequences   requestrepo.Sequences
	ProofIndex  janitor.ProofIndex
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	sequenceRepo := sequencerepo.New(conn)
	requestRepo := requestrepo.New(conn, txManager, sequenceRepo)

	return &Repositories{
		UserRepo:    userRepo,
		RequestRepo: requestRepo,
		Sequences:   sequenceRepo,
		ProofIndex:  requestRepo,
	}
}
