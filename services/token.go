package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"main/utils"
)

// GenerateToken issues the access token for a logged-in user. The login is a
// mock, so the token carries the email as the user id and nothing else.
func GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": email,
		"iss":     "recentnotes",
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(utils.JWTExpirationTime) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}
