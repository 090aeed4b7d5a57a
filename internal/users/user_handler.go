package users

import (
	"net/http"

	apperrors "github.com/smhardwarepst-collab/inventaris-backend/pkg/errors"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/security"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UsersHandler struct {
	Repository UserRepository
}

func NewHandler(r UserRepository) *UsersHandler {
	return &UsersHandler{
		Repository: r,
	}
}

func (h *UsersHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth/register", h.RegisterUser)
}

func (h *UsersHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/auth/me", h.Me)
}

func (h *UsersHandler) RegisterUser(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	id, err := h.Repository.PersistUser(c.Request.Context(), req, hashedPassword)
	if err != nil {
		if apperrors.IsConflict(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create user",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "User registered successfully"})
}

// Me returns the stored account behind the presented token. The lookup hits
// the database, so a token that outlives its account gets a 404 here even
// though the token itself still verifies.
func (h *UsersHandler) Me(c *gin.Context) {
	userID, ok := security.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		return
	}

	user, err := h.Repository.GetUser(c.Request.Context(), userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user.Public())
}
