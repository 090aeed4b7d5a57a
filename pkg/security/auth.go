package security

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"time"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/repository"
	apperrors "github.com/smhardwarepst-collab/inventaris-backend/pkg/errors"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const TokenTTL = 24 * time.Hour

var (
	jwtSecret     []byte
	jwtSecretOnce sync.Once
)

func secret() []byte {
	jwtSecretOnce.Do(func() {
		s := os.Getenv("JWT_SECRET")
		if s == "" {
			// .env fallback for local runs started outside the entry point.
			_ = godotenv.Load()
			s = os.Getenv("JWT_SECRET")
		}
		if s == "" {
			log.Fatal("JWT_SECRET environment variable is not set")
		}
		jwtSecret = []byte(s)
	})
	return jwtSecret
}

// AuthenticateUser checks the password against the stored bcrypt hash.
// An unknown username and a wrong password surface as distinct errors so the
// handler can report them per contract; neither response carries the hash.
func AuthenticateUser(ctx context.Context, username, password string, repo *repository.Repository) (*models.User, error) {
	var user models.User

	query := repo.Goqu.Select("id", "username", "email", "password_hash").
		From("users").
		Where(goqu.Ex{"username": username})

	found, err := query.Executor().ScanStructContext(ctx, &user)
	if err != nil {
		if err == sql.ErrNoRows {
			found = false
		} else {
			return nil, apperrors.WrapDBError("failed to look up user", err)
		}
	}
	if !found {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewAuthError("invalid password")
	}

	return &user, nil
}

// GenerateJWT issues an HS256 token embedding the public identity claims.
func GenerateJWT(user models.PublicUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// VerifyToken is pure computation over the token string, no store round-trip.
// There is no revocation before natural expiry.
func VerifyToken(tokenString string) (models.PublicUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAuthError("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return models.PublicUser{}, apperrors.NewAuthError("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.PublicUser{}, apperrors.NewAuthError("malformed claims")
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return models.PublicUser{}, apperrors.NewAuthError("malformed claims")
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)

	return models.PublicUser{
		ID:       int(id),
		Username: username,
		Email:    email,
	}, nil
}
