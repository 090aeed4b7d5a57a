package security

import (
	"net/http"
	"strconv"
	"time"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/rate_limiter"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"
	apperrors "github.com/smhardwarepst-collab/inventaris-backend/pkg/errors"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	repo        *repository.Repository
	rateLimiter *rate_limiter.RateLimiter
}

func NewLoginHandler(r *repository.Repository) *LoginHandler {
	return &LoginHandler{
		repo:        r,
		rateLimiter: rate_limiter.NewRateLimiter(10, 5*time.Minute),
	}
}

func (l *LoginHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth/login", l.Login)
}

func (l *LoginHandler) Login(c *gin.Context) {
	clientIP := c.ClientIP()
	if !l.rateLimiter.IsAllowed(clientIP) {
		c.Header("X-RateLimit-Remaining", strconv.Itoa(l.rateLimiter.Remaining(clientIP)))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts, try again later"})
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	user, err := AuthenticateUser(c.Request.Context(), req.Username, req.Password, l.repo)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		case apperrors.IsAuth(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate", "details": err.Error()})
		}
		return
	}

	token, err := GenerateJWT(user.Public())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}
