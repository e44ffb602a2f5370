package main

import (
	"log"

	"techclass/config"
	"techclass/database"
	authRoutes "techclass/routers/authRoutes"
	certificateRoutes "techclass/routers/certificateRoutes"
	courseRoutes "techclass/routers/courseRoutes"
	siteRoutes "techclass/routers/siteRoutes"
	userRoutes "techclass/routers/userRoutes"
	"techclass/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	siteRoutes.SetupSiteRoutes(app)

	scheduler := utils.StartStatsScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
