package main

import (
	"log"

	"github.com/harshrjgithub/YouTube-LMS/config"
	"github.com/harshrjgithub/YouTube-LMS/database"
	authRoutes "github.com/harshrjgithub/YouTube-LMS/routers/authRoutes"
	courseRoutes "github.com/harshrjgithub/YouTube-LMS/routers/courseRoutes"
	userRoutes "github.com/harshrjgithub/YouTube-LMS/routers/userRoutes"
	"github.com/harshrjgithub/YouTube-LMS/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Startup pass must finish before the server accepts traffic
	if err := database.Bootstrap(database.Database.Db); err != nil {
		log.Fatalf("Startup bootstrap failed: %v", err)
	}

	utils.StartMaintenanceScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
