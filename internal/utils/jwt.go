package utils

import (
	"time"

	"gymfit/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken создаёт JWT с user_id и ролью.
func GenerateToken(secret string, userID int, role models.Role, duration time.Duration, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"role":       string(role),
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(), // issued at — доп. уникальность
		"token_type": tokenType,         // различие между access и refresh
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
