package stats

import (
	"context"
	"fmt"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type StatsRepository interface {
	ComputeStats(ctx context.Context) (*models.Stats, error)
}

type statsRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) StatsRepository {
	return &statsRepositoryImpl{repository: r}
}

type bucketCount struct {
	Bucket string `db:"bucket"`
	Count  int    `db:"count"`
}

// ComputeStats runs the three aggregates as a plain sequence of queries.
// Bucket keys are the literal stored strings; NULL status collapses into the
// empty-string bucket, no other normalization.
func (r *statsRepositoryImpl) ComputeStats(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{
		ByStatus:   make(map[string]int),
		ByCategory: make(map[string]int),
	}

	totalQuery := r.repository.Goqu.Select(goqu.COUNT(goqu.Star())).From("inventory")
	if _, err := totalQuery.Executor().ScanValContext(ctx, &stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count inventory items: %w", err)
	}

	byStatus, err := r.groupedCounts(ctx, "COALESCE(status, '')")
	if err != nil {
		return nil, fmt.Errorf("failed to group by status: %w", err)
	}
	stats.ByStatus = byStatus

	byCategory, err := r.groupedCounts(ctx, "COALESCE(kategori, '')")
	if err != nil {
		return nil, fmt.Errorf("failed to group by category: %w", err)
	}
	stats.ByCategory = byCategory

	return stats, nil
}

func (r *statsRepositoryImpl) groupedCounts(ctx context.Context, bucketSQL string) (map[string]int, error) {
	bucket := goqu.L(bucketSQL)

	var rows []bucketCount
	query := r.repository.Goqu.Select(
		bucket.As("bucket"),
		goqu.COUNT(goqu.Star()).As("count")).
		From("inventory").
		GroupBy(bucket)

	if err := query.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Bucket] = row.Count
	}

	return counts, nil
}
