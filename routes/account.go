package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/controllers"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

// SetupAccountRoutes configures all account and authentication routes
func SetupAccountRoutes(api fiber.Router) {
	account := api.Group("/account")

	// Public routes
	account.Post("/register", validators.Register, controllers.Register)
	account.Post("/login", validators.Login, controllers.Login)
	account.Post("/loginCookie", validators.Login, controllers.LoginCookie)

	// Cookie-mode routes (mobile webview flows)
	account.Get("/me", middleware.CookieProtected(), middleware.ActiveAccount(), controllers.GetProfile)
	account.Post("/logout", middleware.CookieProtected(), controllers.Logout)

	// Bearer-mode routes
	account.Post("/changePassword", validators.ChangePassword, middleware.Protected(), middleware.ActiveAccount(), controllers.ChangePassword)
	account.Post("/avatar", middleware.Protected(), middleware.ActiveAccount(), controllers.UpdateAvatar)

	// Administration
	account.Get("/", middleware.Protected(), middleware.ActiveAccount(), middleware.RequireAdmin(), controllers.GetAllAccounts)
	account.Get("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.GetAccount)
	account.Patch("/:id", validators.ValidateID, validators.UpdateAccount, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireAdmin(), controllers.UpdateAccount)
	account.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireAdmin(), controllers.DeleteAccount)
}
