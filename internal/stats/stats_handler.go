package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Repository StatsRepository
}

func NewHandler(r StatsRepository) *StatsHandler {
	return &StatsHandler{
		Repository: r,
	}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.GetStats)
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.Repository.ComputeStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to compute stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
