package items

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/stats"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func expectPersist(dbMock sqlmock.Sqlmock, nextNo, newID int) {
	dbMock.ExpectBegin()
	dbMock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
		WithArgs(itemNoLockKey).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectQuery(`SELECT COALESCE\(MAX\(no\), 0\) \+ 1 FROM inventory`).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(nextNo))
	dbMock.ExpectQuery(`INSERT INTO "inventory"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(newID))
	dbMock.ExpectCommit()
}

// Walks the catalog through its whole lifecycle over one connection: two
// adds get numbers 1 and 2, deleting the first leaves the survivor's number
// and the total untouched at one.
func TestCatalogLifecycleOverHTTP(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := repository.NewRepository(db)
	itemRepo := NewRepository(repo)
	statsRepo := stats.NewRepository(repo)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", 3)
		c.Next()
	})
	group := router.Group("")
	NewHandler(itemRepo).RegisterRoutes(group)
	stats.NewHandler(statsRepo).RegisterRoutes(group)

	// add "Laptop A", then "Laptop B"
	expectPersist(dbMock, 1, 1)
	expectPersist(dbMock, 2, 2)

	resp := doJSON(router, http.MethodPost, "/items", map[string]string{
		"nama": "Laptop A", "kategori": "Elektronik",
	})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"no":1`)

	resp = doJSON(router, http.MethodPost, "/items", map[string]string{
		"nama": "Laptop B", "kategori": "Elektronik",
	})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"no":2`)

	// delete "Laptop A"
	dbMock.ExpectExec(`DELETE FROM "inventory"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp = doJSON(router, http.MethodDelete, "/items/1", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	// the listing shows only the survivor, still numbered 2
	dbMock.ExpectQuery(`SELECT .+ FROM "inventory" ORDER BY "no" ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "no", "kategori", "nama"}).
			AddRow(2, 2, "Elektronik", "Laptop B"))

	resp = doJSON(router, http.MethodGet, "/items", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	var listed []models.InventoryItem
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
	assert.Equal(t, 2, listed[0].No)
	assert.Equal(t, "Laptop B", listed[0].Nama)

	// the aggregate counts the one remaining item
	dbMock.ExpectQuery(`SELECT COUNT\(\*\) FROM "inventory"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	dbMock.ExpectQuery(`COALESCE\(status, ''\)`).
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "count"}).AddRow("", 1))
	dbMock.ExpectQuery(`COALESCE\(kategori, ''\)`).
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "count"}).AddRow("Elektronik", 1))

	resp = doJSON(router, http.MethodGet, "/stats", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	var aggregate models.Stats
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &aggregate))
	assert.Equal(t, 1, aggregate.Total)
	assert.Equal(t, 1, aggregate.ByCategory["Elektronik"])

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
