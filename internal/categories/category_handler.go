package categories

import (
	"net/http"
	"strings"

	apperrors "github.com/smhardwarepst-collab/inventaris-backend/pkg/errors"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	Repository CategoryRepository
	Service    *CategoryService
}

func NewHandler(r CategoryRepository, s *CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Repository: r,
		Service:    s,
	}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories", h.GetCategories)
	router.POST("/categories", h.AddCategory)
	router.PUT("/categories/:name", h.RenameCategory)
	router.DELETE("/categories/:name", h.DeleteCategory)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	names, err := h.Repository.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve categories", "details": err.Error()})
		return
	}

	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	if err := h.Repository.PersistCategory(c.Request.Context(), req.Name); err != nil {
		if apperrors.IsConflict(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category created successfully"})
}

func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	oldName := c.Param("name")

	var req models.RenameCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.Service.Rename(c.Request.Context(), oldName, req.NewName); err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename category", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category renamed successfully"})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	name := c.Param("name")

	if err := h.Repository.DeleteCategory(c.Request.Context(), name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
