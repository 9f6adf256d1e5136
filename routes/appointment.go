package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/controllers"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

// SetupAppointmentRoutes configures all appointment related routes.
// Appointments are created via the booking workflow on /transaction.
func SetupAppointmentRoutes(api fiber.Router) {
	appointment := api.Group("/appointment")
	appointment.Get("/", middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.GetAllAppointments)
	appointment.Get("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), controllers.GetAppointment)
	appointment.Patch("/:id", validators.ValidateID, validators.UpdateAppointment, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireTherapistOrStaff(), controllers.UpdateAppointment)
	appointment.Post("/:id/images", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireTherapist(), controllers.UploadCheckImages)
	appointment.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireAdmin(), controllers.DeleteAppointment)
}
