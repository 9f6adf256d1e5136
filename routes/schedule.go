package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/controllers"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

// SetupScheduleRoutes configures the slot and shift routes
func SetupScheduleRoutes(api fiber.Router) {
	slots := api.Group("/slots")
	slots.Get("/", controllers.GetAllSlots)
	slots.Get("/:id", validators.ValidateID, controllers.GetSlot)
	slots.Post("/", validators.CreateSlot, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireAdmin(), controllers.CreateSlot)
	slots.Patch("/:id", validators.ValidateID, validators.UpdateSlot, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireAdmin(), controllers.UpdateSlot)
	slots.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireAdmin(), controllers.DeleteSlot)

	shifts := api.Group("/shifts")
	shifts.Get("/", middleware.Protected(), middleware.ActiveAccount(), middleware.RequireTherapistOrStaff(), controllers.GetAllShifts)
	shifts.Get("/mine", middleware.Protected(), middleware.ActiveAccount(), controllers.GetShiftsByAccount)
	shifts.Get("/therapist/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), controllers.GetShiftsByTherapist)
	shifts.Get("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), controllers.GetShift)
	shifts.Post("/", validators.CreateShift, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.CreateShift)
	shifts.Patch("/:id", validators.ValidateID, validators.UpdateShift, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireTherapistOrStaff(), controllers.UpdateShift)
	shifts.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.DeleteShift)
}
