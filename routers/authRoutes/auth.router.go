package authRoutes

import (
	authController "github.com/harshrjgithub/YouTube-LMS/controllers/auth"
	"github.com/harshrjgithub/YouTube-LMS/middleware"
	authValidator "github.com/harshrjgithub/YouTube-LMS/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration, login and profile routes
func SetupAuthRoutes(app *fiber.App) {
	userGroup := app.Group("/api/v1/users")

	userGroup.Post("/register", authValidator.Register(), authController.Register)
	userGroup.Post("/login", authValidator.Login(), authController.Login)
	userGroup.Post("/logout", authController.Logout)

	userGroup.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, authValidator.UpdateProfile(), authController.UpdateProfile)
}
