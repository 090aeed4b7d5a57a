package sheets

import (
	"net/http"
	"os"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/items"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"

	"github.com/gin-gonic/gin"
)

type SheetsExportHandler struct {
	exportService  *ExportService
	itemRepository items.ItemRepository
}

func NewHandler(exportService *ExportService, itemRepository items.ItemRepository) *SheetsExportHandler {
	return &SheetsExportHandler{
		exportService:  exportService,
		itemRepository: itemRepository,
	}
}

func (h *SheetsExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/reports/sheets/export", h.ExportItems)
}

func (h *SheetsExportHandler) ExportItems(c *gin.Context) {
	spreadsheetID := os.Getenv("SHEETS_SPREADSHEET_ID")
	if spreadsheetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "SHEETS_SPREADSHEET_ID is not configured"})
		return
	}

	allItems, err := h.itemRepository.GetItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve inventory items", "details": err.Error()})
		return
	}

	if err := h.exportService.WriteRows(c.Request.Context(), spreadsheetID, itemRows(allItems)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export inventory", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory exported successfully", "rows": len(allItems)})
}

func itemRows(allItems []models.InventoryItem) [][]interface{} {
	rows := [][]interface{}{
		{"No", "Kategori", "Code Barang", "Nama", "Serial Number", "Tanggal", "Lokasi", "Asal Barang", "Status", "Ukuran", "Keterangan"},
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	for _, item := range allItems {
		rows = append(rows, []interface{}{
			item.No,
			item.Kategori,
			deref(item.CodeBarang),
			item.Nama,
			deref(item.SerialNumber),
			deref(item.Tanggal),
			deref(item.Lokasi),
			deref(item.AsalBarang),
			deref(item.Status),
			deref(item.Ukuran),
			deref(item.Keterangan),
		})
	}

	return rows
}
