package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/controllers"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func SetupServiceRoutes(api fiber.Router) {
	service := api.Group("/service")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", validators.ValidateID, controllers.GetService)
	service.Post("/", validators.CreateService, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.CreateService)
	service.Patch("/:id", validators.ValidateID, validators.UpdateService, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.UpdateService)
	service.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.DeleteService)
}
