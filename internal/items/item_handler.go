package items

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/smhardwarepst-collab/inventaris-backend/pkg/errors"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	Repository ItemRepository
}

func NewHandler(r ItemRepository) *ItemHandler {
	return &ItemHandler{
		Repository: r,
	}
}

func (h *ItemHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/items", h.GetItems)
	router.POST("/items", h.AddItem)
	router.PUT("/items/:id", h.UpdateItem)
	router.DELETE("/items/:id", h.DeleteItem)
}

func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.Repository.GetItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve inventory items", "details": err.Error()})
		return
	}

	if items == nil {
		items = []models.InventoryItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) AddItem(c *gin.Context) {
	var req models.ItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if strings.TrimSpace(req.Nama) == "" || strings.TrimSpace(req.Kategori) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nama and kategori are required"})
		return
	}

	createdBy, ok := security.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		return
	}

	id, no, err := h.Repository.PersistItem(c.Request.Context(), req, createdBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "no": no})
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var req models.ItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.Repository.UpdateItem(c.Request.Context(), id, req); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item updated successfully"})
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	if err := h.Repository.DeleteItem(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}
