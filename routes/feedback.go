package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/controllers"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func SetupFeedbackRoutes(api fiber.Router) {
	feedback := api.Group("/feedback")
	feedback.Get("/", controllers.GetAllFeedbacks)
	feedback.Get("/:id", validators.ValidateID, controllers.GetFeedback)
	feedback.Post("/", validators.CreateFeedback, middleware.Protected(), middleware.ActiveAccount(), controllers.CreateFeedback)
	feedback.Patch("/:id", validators.ValidateID, validators.UpdateFeedback, middleware.Protected(), middleware.ActiveAccount(), controllers.UpdateFeedback)
	feedback.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.DeleteFeedback)
}
