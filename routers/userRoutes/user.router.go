package userRoutes

import (
	controllers "techclass/controllers/user"
	"techclass/middleware"
	validators "techclass/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up user profile routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, controllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, validators.UpdateProfile(), controllers.UpdateProfile)

	adminGroup := app.Group("/admin/user")
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly, validators.UserList(), controllers.AdminListUsers)
}
