package repo

import (
	"testing"

	"github.com/sokha-dev/staffportal/internal/pg"
	requestrepo "github.com/sokha-dev/staffportal/internal/repo/request-repo"
	sequencerepo "github.com/sokha-dev/staffportal/internal/repo/sequence-repo"
	userrepo "github.com/sokha-dev/staffportal/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.RequestRepo)
	assert.NotNil(t, repo.Sequences)
	assert.NotNil(t, repo.ProofIndex)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &requestrepo.Repository{}, repo.RequestRepo)
	assert.IsType(t, &sequencerepo.Repository{}, repo.Sequences)
	assert.Same(t, repo.RequestRepo, repo.ProofIndex)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
