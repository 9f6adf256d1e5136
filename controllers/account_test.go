package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerPayload() map[string]any {
	return map[string]any{
		"username": "janedoe",
		"password": "secret123",
		"email":    "jane@test.com",
		"dob":      "1995-06-15",
		"phone":    "0123456789",
	}
}

func TestRegister_Success(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/api/account/register", registerPayload(), "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, "janedoe", data["username"])
	assert.Equal(t, string(models.RoleCustomer), data["role"])
	assert.NotContains(t, data, "password")
}

func TestRegister_RoleIsAlwaysCustomer(t *testing.T) {
	app := setupTestApp(t)

	payload := registerPayload()
	payload["role"] = "Admin"
	resp, body := doRequest(t, app, http.MethodPost, "/api/account/register", payload, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, string(models.RoleCustomer), data["role"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/account/register", registerPayload(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payload := registerPayload()
	payload["username"] = "otheruser"
	resp, body := doRequest(t, app, http.MethodPost, "/api/account/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["message"], "email")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/account/register", registerPayload(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payload := registerPayload()
	payload["email"] = "other@test.com"
	resp, body := doRequest(t, app, http.MethodPost, "/api/account/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["message"], "username")
}

func TestRegister_DOBInFuture(t *testing.T) {
	app := setupTestApp(t)

	payload := registerPayload()
	payload["dob"] = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	resp, _ := doRequest(t, app, http.MethodPost, "/api/account/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegister_DOBTooOld(t *testing.T) {
	app := setupTestApp(t)

	payload := registerPayload()
	payload["dob"] = "1850-01-01"
	resp, _ := doRequest(t, app, http.MethodPost, "/api/account/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegister_ShortPassword(t *testing.T) {
	app := setupTestApp(t)

	payload := registerPayload()
	payload["password"] = "abc"
	resp, body := doRequest(t, app, http.MethodPost, "/api/account/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["message"], "Password")
}

func TestLogin_Success(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/account/register", registerPayload(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodPost, "/api/account/login", map[string]any{
		"email":    "jane@test.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])
	account := data["account"].(map[string]any)
	assert.NotContains(t, account, "password")
}

func TestLogin_WrongPassword(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/account/register", registerPayload(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/account/login", map[string]any{
		"email":    "jane@test.com",
		"password": "wrongpass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/account/register", registerPayload(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, db.DB.Model(&models.Account{}).
		Where("email = ?", "jane@test.com").
		Update("is_active", false).Error)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/account/login", map[string]any{
		"email":    "jane@test.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLoginCookie_SetsJWTCookie(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/account/register", registerPayload(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/account/loginCookie", map[string]any{
		"email":    "jane@test.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var jwtCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "jwt" {
			jwtCookie = cookie
		}
	}
	require.NotNil(t, jwtCookie)
	assert.NotEmpty(t, jwtCookie.Value)
	assert.True(t, jwtCookie.HttpOnly)
}

func TestChangePassword(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/account/register", registerPayload(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodPost, "/api/account/login", map[string]any{
		"email":    "jane@test.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["data"].(map[string]any)["token"].(string)

	// Wrong current password
	resp, _ = doRequest(t, app, http.MethodPost, "/api/account/changePassword", map[string]any{
		"current_password": "nope",
		"new_password":     "newsecret",
	}, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// New password equals current
	resp, _ = doRequest(t, app, http.MethodPost, "/api/account/changePassword", map[string]any{
		"current_password": "secret123",
		"new_password":     "secret123",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// New password too short
	resp, _ = doRequest(t, app, http.MethodPost, "/api/account/changePassword", map[string]any{
		"current_password": "secret123",
		"new_password":     "abc",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Success; old password stops working
	resp, _ = doRequest(t, app, http.MethodPost, "/api/account/changePassword", map[string]any{
		"current_password": "secret123",
		"new_password":     "newsecret",
	}, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/account/login", map[string]any{
		"email":    "jane@test.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/account/login", map[string]any{
		"email":    "jane@test.com",
		"password": "newsecret",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetAllAccounts_RequiresAdmin(t *testing.T) {
	app := setupTestApp(t)

	_, customerToken := createTestAccount(t, models.RoleCustomer, true)
	resp, _ := doRequest(t, app, http.MethodGet, "/api/account/", nil, customerToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, adminToken := createTestAccount(t, models.RoleAdmin, true)
	resp, _ = doRequest(t, app, http.MethodGet, "/api/account/", nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
