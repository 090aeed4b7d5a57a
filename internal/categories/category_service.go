package categories

import (
	"context"
	"strings"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"
	apperrors "github.com/smhardwarepst-collab/inventaris-backend/pkg/errors"

	"github.com/doug-martin/goqu/v9"
)

// CategoryService coordinates the rename cascade: the registry key and the
// denormalized label on every referencing item change as one unit. Callers
// never observe a state where only one side carries the new name.
type CategoryService struct {
	r  *repository.Repository
	cr CategoryRepository
}

func NewService(r *repository.Repository, cr CategoryRepository) *CategoryService {
	return &CategoryService{
		r:  r,
		cr: cr,
	}
}

func (s *CategoryService) Rename(ctx context.Context, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return apperrors.NewValidationError("new category name must not be empty")
	}

	return repository.WithTransaction(ctx, s.r.Goqu, func(tx *goqu.TxDatabase) error {
		if err := s.cr.RenameCategory(ctx, tx, oldName, newName); err != nil {
			return err
		}
		return s.cr.RelabelItems(ctx, tx, oldName, newName)
	})
}
