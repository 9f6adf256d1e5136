package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/realjeremy04/Skincare-Mobile-BE/cron"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/redis"
	"github.com/realjeremy04/Skincare-Mobile-BE/routes"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
)

func main() {
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})
	db.Init()
	db.Migrate()
	redis.InitRedis()

	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowMethods:     "GET,POST,PATCH,DELETE",
		AllowCredentials: true,
	}))

	app.Static("/images", utils.ImageDir)

	api := app.Group("/api")
	routes.SetupAccountRoutes(api)
	routes.SetupServiceRoutes(api)
	routes.SetupTherapistRoutes(api)
	routes.SetupScheduleRoutes(api)
	routes.SetupAppointmentRoutes(api)
	routes.SetupTransactionRoutes(api)
	routes.SetupFeedbackRoutes(api)
	routes.SetupBlogRoutes(api)
	routes.SetupQuizRoutes(api)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
