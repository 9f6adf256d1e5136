package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
)

// JWTSecret returns the signing secret from the environment.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

// CreateToken issues the signed access token both login variants share.
// The role claim is embedded; role changes take effect at next login.
func CreateToken(accountID uint, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"id":   accountID,
		"role": string(role),
		"exp":  time.Now().Add(time.Hour * 24).Unix(), // 24 hour expiration
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}
