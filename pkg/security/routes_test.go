package security

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func setupLoginRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	handler := NewLoginHandler(repository.NewRepository(db))
	router := gin.New()
	handler.RegisterRoutes(router)

	return router, mock, func() { _ = db.Close() }
}

func postLogin(router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestLoginSuccessReturnsTokenAndPublicFields(t *testing.T) {
	router, mock, cleanup := setupLoginRouter(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
			AddRow(3, "budi", "budi@example.com", string(hash)))

	resp := postLogin(router, "budi", "rahasia123")
	assert.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Token string `json:"token"`
		User  struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, 3, out.User.ID)
	assert.Equal(t, "budi", out.User.Username)
	assert.Equal(t, "budi@example.com", out.User.Email)

	// the body must never leak the stored hash
	assert.NotContains(t, resp.Body.String(), string(hash))

	identity, err := VerifyToken(out.Token)
	assert.NoError(t, err)
	assert.Equal(t, 3, identity.ID)
	assert.Equal(t, "budi", identity.Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	router, mock, cleanup := setupLoginRouter(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}).
			AddRow(3, "budi", "budi@example.com", string(hash)))

	resp := postLogin(router, "budi", "salah")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NotContains(t, resp.Body.String(), "token")
}

func TestLoginUnknownUser(t *testing.T) {
	router, mock, cleanup := setupLoginRouter(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash"}))

	resp := postLogin(router, "tidakada", "apapun")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
