package categories

import (
	"context"
	"fmt"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"
	apperrors "github.com/smhardwarepst-collab/inventaris-backend/pkg/errors"

	"github.com/doug-martin/goqu/v9"
)

type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]string, error)
	PersistCategory(ctx context.Context, name string) error
	DeleteCategory(ctx context.Context, name string) error
	RenameCategory(ctx context.Context, tx *goqu.TxDatabase, oldName, newName string) error
	RelabelItems(ctx context.Context, tx *goqu.TxDatabase, oldName, newName string) error
}

type categoryRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) CategoryRepository {
	return &categoryRepositoryImpl{repository: r}
}

func (r *categoryRepositoryImpl) GetCategories(ctx context.Context) ([]string, error) {
	var names []string
	query := r.repository.Goqu.Select("name").
		From("categories").
		Order(goqu.C("name").Asc())

	if err := query.Executor().ScanValsContext(ctx, &names); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return names, nil
}

func (r *categoryRepositoryImpl) PersistCategory(ctx context.Context, name string) error {
	query := r.repository.Goqu.Insert("categories").
		Rows(goqu.Record{"name": name})

	if _, err := query.Executor().ExecContext(ctx); err != nil {
		return apperrors.WrapDBError("category already exists", err)
	}

	return nil
}

// DeleteCategory removes the registry row only. Items still labeled with the
// removed name keep that label; that orphaning is intended behavior.
func (r *categoryRepositoryImpl) DeleteCategory(ctx context.Context, name string) error {
	query := r.repository.Goqu.Delete("categories").
		Where(goqu.Ex{"name": name})

	if _, err := query.Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// RenameCategory updates the registry key inside the caller's transaction.
// Name is the primary key, so this is an in-place key rewrite.
func (r *categoryRepositoryImpl) RenameCategory(ctx context.Context, tx *goqu.TxDatabase, oldName, newName string) error {
	result, err := tx.Update("categories").
		Set(goqu.Record{"name": newName}).
		Where(goqu.Ex{"name": oldName}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return apperrors.WrapDBError("category name already exists", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError("category not found")
	}

	return nil
}

// RelabelItems rewrites the denormalized label on every item that carries the
// old name. Must run in the same transaction as RenameCategory.
func (r *categoryRepositoryImpl) RelabelItems(ctx context.Context, tx *goqu.TxDatabase, oldName, newName string) error {
	_, err := tx.Update("inventory").
		Set(goqu.Record{"kategori": newName}).
		Where(goqu.Ex{"kategori": oldName}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to relabel items: %w", err)
	}

	return nil
}
