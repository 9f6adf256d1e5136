package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/redis"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
	"golang.org/x/crypto/bcrypt"
)

const dateLayout = "2006-01-02"

// Register handles customer self-registration. The role is always fixed to
// Customer; staff and therapist accounts are provisioned by an admin.
func Register(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.RegisterPayload)

	dob, err := time.Parse(dateLayout, payload.DOB)
	if err != nil {
		return utils.BadRequest("DOB must match the format " + dateLayout)
	}
	now := time.Now()
	if dob.After(now) {
		return utils.BadRequest("Date of birth cannot be in the future")
	}
	if dob.Before(now.AddDate(-120, 0, 0)) {
		return utils.BadRequest("Date of birth cannot be more than 120 years in the past")
	}

	var existing models.Account
	if db.DB.Where("email = ?", payload.Email).First(&existing).RowsAffected > 0 {
		return utils.BadRequest("An account with this email already exists")
	}
	if db.DB.Where("username = ?", payload.Username).First(&existing).RowsAffected > 0 {
		return utils.BadRequest("An account with this username already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Internal("Failed to hash password")
	}

	account := models.Account{
		Username: payload.Username,
		Password: string(hashedPassword),
		Email:    payload.Email,
		Role:     models.RoleCustomer,
		DOB:      dob,
		Phone:    payload.Phone,
		IsActive: true,
	}

	if err := db.DB.Create(&account).Error; err != nil {
		return utils.Internal("Failed to create account")
	}

	return utils.Created(c, account)
}

// login verifies credentials and the active flag; both login variants share it.
func login(c *fiber.Ctx) (*models.Account, string, error) {
	payload := c.Locals(validators.PayloadKey).(*validators.LoginPayload)

	var account models.Account
	if db.DB.Where("email = ?", payload.Email).First(&account).RowsAffected == 0 {
		return nil, "", utils.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(payload.Password)); err != nil {
		return nil, "", utils.Unauthorized("Invalid credentials")
	}

	if !account.IsActive {
		return nil, "", utils.Forbidden("Account is deactivated")
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, "", utils.Internal("Failed to generate token")
	}

	return &account, token, nil
}

// Login returns the signed token in the response body (bearer mode).
func Login(c *fiber.Ctx) error {
	account, token, err := login(c)
	if err != nil {
		return err
	}

	return utils.Success(c, fiber.Map{
		"token":   token,
		"account": account,
	})
}

// LoginCookie sets the same signed token as an http-only cookie instead of
// returning it in the body.
func LoginCookie(c *fiber.Ctx) error {
	account, token, err := login(c)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return utils.Success(c, fiber.Map{"account": account})
}

// Logout clears the auth cookie. Bearer tokens stay valid until expiry.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return utils.Message(c, "Successfully logged out")
}

// ChangePassword re-hashes after checking the current password.
func ChangePassword(c *fiber.Ctx) error {
	payload := c.Locals(validators.PayloadKey).(*validators.ChangePasswordPayload)
	accountID := c.Locals("accountID").(uint)

	var account models.Account
	if db.DB.First(&account, accountID).RowsAffected == 0 {
		return utils.Unauthorized("Account no longer exists")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(payload.CurrentPassword)); err != nil {
		return utils.Unauthorized("Current password is incorrect")
	}

	if payload.NewPassword == payload.CurrentPassword {
		return utils.BadRequest("New password must be different from the current password")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.Internal("Failed to hash password")
	}

	if err := db.DB.Model(&account).Update("password", string(hashedPassword)).Error; err != nil {
		return utils.Internal("Failed to update password")
	}

	return utils.Message(c, "Password changed successfully")
}

// GetProfile returns the authenticated account.
func GetProfile(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	var account models.Account
	if db.DB.First(&account, accountID).RowsAffected == 0 {
		return utils.Unauthorized("Account no longer exists")
	}

	return utils.Success(c, account)
}

// UpdateAvatar uploads a profile picture to Cloudinary and stores its URL.
func UpdateAvatar(c *fiber.Ctx) error {
	accountID := c.Locals("accountID").(uint)

	file, err := c.FormFile("avatar")
	if err != nil {
		return utils.BadRequest("Avatar file is required")
	}

	f, err := file.Open()
	if err != nil {
		return utils.Internal("Failed to open avatar file")
	}
	defer f.Close()

	publicID := utils.PublicID("account", accountID)
	secureURL, err := utils.UploadToCloudinary(f, publicID, "avatars", true)
	if err != nil {
		return utils.Internal("Failed to upload avatar")
	}

	if err := db.DB.Model(&models.Account{}).Where("id = ?", accountID).
		Update("avatar", secureURL).Error; err != nil {
		return utils.Internal("Failed to update avatar")
	}

	return utils.Success(c, fiber.Map{"avatar": secureURL})
}

func GetAllAccounts(c *fiber.Ctx) error {
	var accounts []models.Account
	if err := db.DB.Find(&accounts).Error; err != nil {
		return utils.Internal("Failed to fetch accounts")
	}
	if len(accounts) == 0 {
		return utils.NotFound("No accounts found")
	}
	return utils.SuccessList(c, len(accounts), accounts)
}

func GetAccount(c *fiber.Ctx) error {
	id := c.Params("id")
	var account models.Account
	if db.DB.First(&account, id).RowsAffected == 0 {
		return utils.NotFound("Account not found")
	}
	return utils.Success(c, account)
}

func UpdateAccount(c *fiber.Ctx) error {
	id := c.Params("id")
	payload := c.Locals(validators.PayloadKey).(*validators.UpdateAccountPayload)

	var account models.Account
	if db.DB.First(&account, id).RowsAffected == 0 {
		return utils.NotFound("Account not found")
	}

	updates := map[string]any{}
	if payload.Username != nil {
		updates["username"] = *payload.Username
	}
	if payload.Email != nil {
		updates["email"] = *payload.Email
	}
	if payload.Phone != nil {
		updates["phone"] = *payload.Phone
	}
	if payload.DOB != nil {
		dob, err := time.Parse(dateLayout, *payload.DOB)
		if err != nil {
			return utils.BadRequest("DOB must match the format " + dateLayout)
		}
		updates["dob"] = dob
	}
	if payload.Role != nil {
		updates["role"] = models.Role(*payload.Role)
	}
	if payload.IsActive != nil {
		updates["is_active"] = *payload.IsActive
	}

	if err := db.DB.Model(&account).Updates(updates).Error; err != nil {
		return utils.Internal("Failed to update account")
	}

	// Deactivation must bite before the cache entry expires.
	if payload.IsActive != nil {
		redis.Del(middleware.ActiveCacheKey(account.ID))
	}

	return utils.Success(c, account)
}

func DeleteAccount(c *fiber.Ctx) error {
	id := c.Params("id")
	var account models.Account
	if db.DB.First(&account, id).RowsAffected == 0 {
		return utils.NotFound("Account not found")
	}
	if err := db.DB.Delete(&account).Error; err != nil {
		return utils.Internal("Failed to delete account")
	}
	redis.Del(middleware.ActiveCacheKey(account.ID))
	return utils.Message(c, "Account deleted successfully")
}
