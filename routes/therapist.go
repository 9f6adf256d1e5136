package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/controllers"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func SetupTherapistRoutes(api fiber.Router) {
	therapist := api.Group("/therapist")
	therapist.Get("/", controllers.GetAllTherapists)
	therapist.Get("/:id", validators.ValidateID, controllers.GetTherapist)
	therapist.Post("/", validators.CreateTherapist, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.CreateTherapist)
	therapist.Patch("/:id", validators.ValidateID, validators.UpdateTherapist, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.UpdateTherapist)
	therapist.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireAdmin(), controllers.DeleteTherapist)
	therapist.Post("/certificate", middleware.Protected(), middleware.ActiveAccount(), middleware.RequireTherapist(), controllers.UploadCertificate)
}
