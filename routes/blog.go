package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/controllers"
	"github.com/realjeremy04/Skincare-Mobile-BE/middleware"
	"github.com/realjeremy04/Skincare-Mobile-BE/validators"
)

func SetupBlogRoutes(api fiber.Router) {
	blog := api.Group("/blog")
	blog.Get("/", controllers.GetAllBlogs)
	blog.Get("/:id", validators.ValidateID, controllers.GetBlog)
	blog.Post("/", validators.CreateBlog, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.CreateBlog)
	blog.Patch("/:id", validators.ValidateID, validators.UpdateBlog, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaff(), controllers.UpdateBlog)
	blog.Delete("/:id", validators.ValidateID, middleware.Protected(), middleware.ActiveAccount(), middleware.RequireStaffOrAdmin(), controllers.DeleteBlog)
}
