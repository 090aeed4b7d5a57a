package users

import (
	"context"
	"database/sql"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"
	apperrors "github.com/smhardwarepst-collab/inventaris-backend/pkg/errors"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type UserRepository interface {
	PersistUser(ctx context.Context, req models.RegisterRequest, hashedPassword []byte) (int, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
}

type userRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) UserRepository {
	return &userRepositoryImpl{repository: r}
}

func (r *userRepositoryImpl) PersistUser(ctx context.Context, req models.RegisterRequest, hashedPassword []byte) (int, error) {
	query := r.repository.Goqu.Insert("users").
		Rows(goqu.Record{
			"username":      req.Username,
			"email":         req.Email,
			"password_hash": string(hashedPassword),
		}).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanValContext(ctx, &id); err != nil {
		// 23505 covers both the username and the email unique indexes.
		return 0, apperrors.WrapDBError("username or email already exists", err)
	}

	return id, nil
}

func (r *userRepositoryImpl) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	query := r.repository.Goqu.Select("id", "username", "email", "password_hash", "created_at").
		From("users").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStructContext(ctx, &user)
	if err != nil && err != sql.ErrNoRows {
		return nil, apperrors.WrapDBError("failed to get user", err)
	}
	if !found {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	return &user, nil
}
