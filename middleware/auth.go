package middleware

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
)

// Protected verifies the bearer token from the Authorization header and puts
// accountID and role into the request locals.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:     utils.JWTSecret(),
		ErrorHandler:   jwtError,
		SuccessHandler: attachClaims,
	})
}

// CookieProtected is the cookie-carried variant of Protected; the token is
// read from the http-only "jwt" cookie set by the cookie login.
func CookieProtected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:     utils.JWTSecret(),
		TokenLookup:    "cookie:jwt",
		ErrorHandler:   jwtError,
		SuccessHandler: attachClaims,
	})
}

func attachClaims(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return utils.Unauthorized("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.Unauthorized("Invalid token claims")
	}

	accountID, err := extractAccountID(claims)
	if err != nil {
		return utils.Unauthorized("Invalid account ID in token")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return utils.Unauthorized("Invalid role in token")
	}

	c.Locals("accountID", accountID)
	c.Locals("role", models.Role(role))

	return c.Next()
}

// extractAccountID handles multiple potential formats of account ID in token
func extractAccountID(claims jwt.MapClaims) (uint, error) {
	idVal := claims["id"]
	if idVal == nil {
		return 0, fmt.Errorf("no ID found in claims")
	}

	switch v := idVal.(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse ID string: %v", err)
		}
		return uint(parsed), nil
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	default:
		return 0, fmt.Errorf("unsupported ID type: %T", v)
	}
}

// jwtError maps verification failures to the three 401 messages the clients
// branch on: missing, expired, invalid.
func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return utils.Unauthorized("Missing authentication token")
	}

	var validationErr *jwt.ValidationError
	if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
		return utils.Unauthorized("Token has expired")
	}

	return utils.Unauthorized("Invalid authentication token")
}
