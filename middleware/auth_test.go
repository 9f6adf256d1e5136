package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})

	chain := append([]fiber.Handler{}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/ping", chain...)

	return app
}

func authRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func TestProtected_MissingToken(t *testing.T) {
	app := newAuthApp(middleware.Protected())

	resp := authRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_ExpiredToken(t *testing.T) {
	app := newAuthApp(middleware.Protected())

	claims := jwt.MapClaims{
		"id":   uint(1),
		"role": string(models.RoleCustomer),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(utils.JWTSecret())
	require.NoError(t, err)

	resp := authRequest(t, app, expired)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_MalformedToken(t *testing.T) {
	app := newAuthApp(middleware.Protected())

	resp := authRequest(t, app, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_ValidToken(t *testing.T) {
	app := newAuthApp(middleware.Protected())

	token, err := utils.CreateToken(42, models.RoleCustomer)
	require.NoError(t, err)

	resp := authRequest(t, app, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRoles(t *testing.T) {
	app := newAuthApp(middleware.Protected(), middleware.RequireStaffOrAdmin())

	cases := []struct {
		role models.Role
		want int
	}{
		{models.RoleAdmin, http.StatusOK},
		{models.RoleStaff, http.StatusOK},
		{models.RoleTherapist, http.StatusForbidden},
		{models.RoleCustomer, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			token, err := utils.CreateToken(1, tc.role)
			require.NoError(t, err)

			resp := authRequest(t, app, token)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRequireRoles_WithoutClaims(t *testing.T) {
	// Role predicate hit without Protected in front of it.
	app := newAuthApp(middleware.RequireAdmin())

	resp := authRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestActiveAccount(t *testing.T) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.Account{}))
	db.DB = database

	app := newAuthApp(middleware.Protected(), middleware.ActiveAccount())

	active := models.Account{
		Username: fmt.Sprintf("active-%d", time.Now().UnixNano()),
		Email:    fmt.Sprintf("active-%d@test.local", time.Now().UnixNano()),
		Password: "irrelevant",
		IsActive: true,
	}
	require.NoError(t, database.Create(&active).Error)

	inactive := models.Account{
		Username: fmt.Sprintf("inactive-%d", time.Now().UnixNano()),
		Email:    fmt.Sprintf("inactive-%d@test.local", time.Now().UnixNano()),
		Password: "irrelevant",
		IsActive: true,
	}
	require.NoError(t, database.Create(&inactive).Error)
	require.NoError(t, database.Model(&inactive).Update("is_active", false).Error)

	activeToken, err := utils.CreateToken(active.ID, active.Role)
	require.NoError(t, err)
	inactiveToken, err := utils.CreateToken(inactive.ID, inactive.Role)
	require.NoError(t, err)
	ghostToken, err := utils.CreateToken(99999, models.RoleCustomer)
	require.NoError(t, err)

	resp := authRequest(t, app, activeToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = authRequest(t, app, inactiveToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = authRequest(t, app, ghostToken)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
