package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/controllers"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

// SetupQuizRoutes configures the question, scoreband, roadmap and userQuiz
// routes that make up the self-assessment quiz.
func SetupQuizRoutes(api fiber.Router) {
	question := api.Group("/question")
	question.Get("/", controllers.GetAllQuestions)
	question.Get("/:id", validators.ValidateID, controllers.GetQuestion)
	question.Post("/", validators.CreateQuestion, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.CreateQuestion)
	question.Patch("/:id", validators.ValidateID, validators.UpdateQuestion, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.UpdateQuestion)
	question.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.DeleteQuestion)

	scoreband := api.Group("/scoreband")
	scoreband.Get("/", controllers.GetAllScorebands)
	scoreband.Get("/:id", validators.ValidateID, controllers.GetScoreband)
	scoreband.Post("/", validators.CreateScoreband, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.CreateScoreband)
	scoreband.Patch("/:id", validators.ValidateID, validators.UpdateScoreband, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.UpdateScoreband)
	scoreband.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.DeleteScoreband)

	roadmap := api.Group("/roadmap")
	roadmap.Get("/", controllers.GetAllRoadmaps)
	roadmap.Get("/:id", validators.ValidateID, controllers.GetRoadmap)
	roadmap.Post("/", validators.CreateRoadmap, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.CreateRoadmap)
	roadmap.Patch("/:id", validators.ValidateID, validators.UpdateRoadmap, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.UpdateRoadmap)
	roadmap.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.DeleteRoadmap)

	userQuiz := api.Group("/userQuiz")
	userQuiz.Post("/", validators.SubmitQuiz, middleware.Protected(), middleware.ActiveAccount(), controllers.SubmitQuiz)
	userQuiz.Get("/", middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.GetAllUserQuizzes)
	userQuiz.Get("/mine", middleware.Protected(), middleware.ActiveAccount(), controllers.GetMyQuizzes)
	userQuiz.Get("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), controllers.GetUserQuiz)
	userQuiz.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.DeleteUserQuiz)
}
