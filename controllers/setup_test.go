package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/routes"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrateAll(database))
	db.SeedPaymentMethods(database)
	db.DB = database

	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	api := app.Group("/api")
	routes.SetupAccountRoutes(api)
	routes.SetupServiceRoutes(api)
	routes.SetupTherapistRoutes(api)
	routes.SetupScheduleRoutes(api)
	routes.SetupAppointmentRoutes(api)
	routes.SetupTransactionRoutes(api)
	routes.SetupFeedbackRoutes(api)
	routes.SetupBlogRoutes(api)
	routes.SetupQuizRoutes(api)

	return app
}

// doRequest performs a JSON request and decodes the JSON response body.
func doRequest(t *testing.T, app *fiber.App, method, path string, payload any, token string) (*http.Response, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	body := map[string]any{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &body))
	}

	return resp, body
}

// createTestAccount persists an account with a bcrypt-free marker password
// replaced by the real hash where the test needs to log in.
func createTestAccount(t *testing.T, role models.Role, active bool) (models.Account, string) {
	t.Helper()

	account := models.Account{
		Username: fmt.Sprintf("user%d", time.Now().UnixNano()),
		Password: "not-a-real-hash",
		Email:    fmt.Sprintf("user%d@test.com", time.Now().UnixNano()),
		Role:     role,
		DOB:      time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
		Phone:    "0123456789",
		IsActive: true,
	}
	require.NoError(t, db.DB.Create(&account).Error)

	// The is_active column default is true, so a zero value at create time
	// would be dropped from the insert. Deactivate explicitly.
	if !active {
		require.NoError(t, db.DB.Model(&account).Update("is_active", false).Error)
		account.IsActive = false
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	require.NoError(t, err)

	return account, token
}

func createTestService(t *testing.T, price float64) models.Service {
	t.Helper()
	service := models.Service{
		Name:     fmt.Sprintf("Facial %d", time.Now().UnixNano()),
		Price:    price,
		IsActive: true,
	}
	require.NoError(t, db.DB.Create(&service).Error)
	return service
}

func createTestTherapist(t *testing.T) models.Therapist {
	t.Helper()
	account, _ := createTestAccount(t, models.RoleTherapist, true)
	therapist := models.Therapist{
		AccountID:  account.ID,
		Experience: 3,
	}
	require.NoError(t, db.DB.Create(&therapist).Error)
	return therapist
}

func createTestSlot(t *testing.T, num int) models.Slot {
	t.Helper()
	slot := models.Slot{
		SlotNum:   num,
		StartTime: "09:00",
		EndTime:   "10:00",
	}
	require.NoError(t, db.DB.Create(&slot).Error)
	return slot
}
