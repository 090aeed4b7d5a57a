package users

import (
	"context"
	"testing"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"
	apperrors "github.com/smhardwarepst-collab/inventaris-backend/pkg/errors"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newRepoWithMockDB(t *testing.T) (UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	return NewRepository(repository.NewRepository(db)), dbMock, func() { _ = db.Close() }
}

func TestPersistUserReturnsID(t *testing.T) {
	userRepo, dbMock, cleanup := newRepoWithMockDB(t)
	defer cleanup()

	dbMock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	id, err := userRepo.PersistUser(context.Background(), models.RegisterRequest{
		Username: "budi",
		Email:    "budi@example.com",
	}, []byte("$2a$10$hash"))

	assert.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestPersistUserDuplicateUsername(t *testing.T) {
	userRepo, dbMock, cleanup := newRepoWithMockDB(t)
	defer cleanup()

	dbMock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := userRepo.PersistUser(context.Background(), models.RegisterRequest{
		Username: "budi",
		Email:    "lain@example.com",
	}, []byte("$2a$10$hash"))

	assert.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestGetUserNotFound(t *testing.T) {
	userRepo, dbMock, cleanup := newRepoWithMockDB(t)
	defer cleanup()

	dbMock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	_, err := userRepo.GetUser(context.Background(), 999)

	assert.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
