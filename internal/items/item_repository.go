package items

import (
	"context"
	"fmt"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"
	apperrors "github.com/smhardwarepst-collab/inventaris-backend/pkg/errors"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// itemNoLockKey scopes the advisory lock serializing display-number
// assignment. Transaction-scoped, so it also serializes writers on other
// service instances sharing the database.
const itemNoLockKey = 874921

type ItemRepository interface {
	GetItems(ctx context.Context) ([]models.InventoryItem, error)
	PersistItem(ctx context.Context, req models.ItemRequest, createdBy int) (id int, no int, err error)
	UpdateItem(ctx context.Context, id int, req models.ItemRequest) error
	DeleteItem(ctx context.Context, id int) error
}

type itemRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) ItemRepository {
	return &itemRepositoryImpl{repository: r}
}

func (r *itemRepositoryImpl) GetItems(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	query := r.repository.Goqu.Select(
		"id", "no", "kategori", "code_barang", "nama", "serial_number",
		"tanggal", "lokasi", "asal_barang", "status", "ukuran", "keterangan",
		"created_by", "created_at", "updated_at").
		From("inventory").
		Order(goqu.C("no").Asc())

	if err := query.Executor().ScanStructsContext(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	return items, nil
}

// PersistItem assigns no = max(no)+1 and inserts, as one serialized unit.
// The advisory xact lock makes the read-then-write atomic under concurrent
// adds: N concurrent callers get exactly {max+1 .. max+N}, no duplicates.
func (r *itemRepositoryImpl) PersistItem(ctx context.Context, req models.ItemRequest, createdBy int) (int, int, error) {
	var id, no int

	err := repository.WithTransaction(ctx, r.repository.Goqu, func(tx *goqu.TxDatabase) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", itemNoLockKey); err != nil {
			return fmt.Errorf("failed to acquire numbering lock: %w", err)
		}

		if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(no), 0) + 1 FROM inventory").Scan(&no); err != nil {
			return fmt.Errorf("failed to compute next display number: %w", err)
		}

		query := tx.Insert("inventory").
			Rows(goqu.Record{
				"no":            no,
				"kategori":      req.Kategori,
				"code_barang":   req.CodeBarang,
				"nama":          req.Nama,
				"serial_number": req.SerialNumber,
				"tanggal":       req.Tanggal,
				"lokasi":        req.Lokasi,
				"asal_barang":   req.AsalBarang,
				"status":        req.Status,
				"ukuran":        req.Ukuran,
				"keterangan":    req.Keterangan,
				"created_by":    createdBy,
			}).
			Returning("id")

		if _, err := query.Executor().ScanValContext(ctx, &id); err != nil {
			return fmt.Errorf("failed to insert inventory item: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return id, no, nil
}

// UpdateItem replaces the descriptive fields. no, id and created_by are
// never touched after creation.
func (r *itemRepositoryImpl) UpdateItem(ctx context.Context, id int, req models.ItemRequest) error {
	result, err := r.repository.Goqu.Update("inventory").
		Set(goqu.Record{
			"kategori":      req.Kategori,
			"code_barang":   req.CodeBarang,
			"nama":          req.Nama,
			"serial_number": req.SerialNumber,
			"tanggal":       req.Tanggal,
			"lokasi":        req.Lokasi,
			"asal_barang":   req.AsalBarang,
			"status":        req.Status,
			"ukuran":        req.Ukuran,
			"keterangan":    req.Keterangan,
			"updated_at":    goqu.L("now()"),
		}).
		Where(goqu.Ex{"id": id}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError("inventory item not found")
	}

	return nil
}

// DeleteItem removes the row. Remaining no values are left as they are, gaps
// are never compacted.
func (r *itemRepositoryImpl) DeleteItem(ctx context.Context, id int) error {
	result, err := r.repository.Goqu.Delete("inventory").
		Where(goqu.Ex{"id": id}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError("inventory item not found")
	}

	return nil
}
