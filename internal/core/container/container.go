package container

import (
	"context"
	"database/sql"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/categories"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/integrations/sheets"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/items"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/stats"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/users"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/security"

	"go.uber.org/zap"
)

type Container struct {
	Repository      *repository.Repository
	LoginHandler    *security.LoginHandler
	UserHandler     *users.UsersHandler
	CategoryHandler *categories.CategoryHandler
	ItemHandler     *items.ItemHandler
	StatsHandler    *stats.StatsHandler
	SheetsHandler   *sheets.SheetsExportHandler
}

func NewAppContainer(db *sql.DB, logger *zap.Logger) *Container {
	repo := repository.NewRepository(db)

	userRepo := users.NewRepository(repo)
	categoryRepo := categories.NewRepository(repo)
	categoryService := categories.NewService(repo, categoryRepo)
	itemRepo := items.NewRepository(repo)
	statsRepo := stats.NewRepository(repo)

	c := &Container{
		Repository:      repo,
		LoginHandler:    security.NewLoginHandler(repo),
		UserHandler:     users.NewHandler(userRepo),
		CategoryHandler: categories.NewHandler(categoryRepo, categoryService),
		ItemHandler:     items.NewHandler(itemRepo),
		StatsHandler:    stats.NewHandler(statsRepo),
	}

	// Sheets export is optional; without credentials the rest of the service
	// runs as usual.
	sheetsService, err := sheets.NewSheetsService(context.Background())
	if err != nil {
		logger.Warn("Google Sheets export disabled", zap.Error(err))
	} else {
		c.SheetsHandler = sheets.NewHandler(sheets.NewExportService(sheetsService), itemRepo)
	}

	return c
}
