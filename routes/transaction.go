package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/controllers"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

// SetupTransactionRoutes configures the transaction routes. POST / is the
// composite booking endpoint.
func SetupTransactionRoutes(api fiber.Router) {
	transaction := api.Group("/transaction")
	transaction.Post("/", validators.CreateBooking, middleware.Protected(), middleware.ActiveAccount(), controllers.CreateBooking)
	transaction.Get("/", middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.GetAllTransactions)
	transaction.Get("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), controllers.GetTransaction)
	transaction.Patch("/:id", validators.ValidateID, validators.UpdateTransaction, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.UpdateTransaction)
	transaction.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireAdmin(), controllers.DeleteTransaction)
}
