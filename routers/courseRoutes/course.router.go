package courseRoutes

import (
	controllers "techclass/controllers/course"
	"techclass/middleware"
	validators "techclass/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up public and admin course routes
func SetupCourseRoutes(app *fiber.App) {
	// Public published courses
	courseGroup := app.Group("/course")
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseByID(), controllers.GetCourseDetails)

	// Course management
	adminGroup := app.Group("/admin/course")
	adminGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.CourseByID(), controllers.AdminDeleteCourse)
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly, validators.CourseList(), controllers.AdminGetAllCourses)
	adminGroup.Post("/:id/publish", middleware.JWTMiddleware, middleware.AdminOnly, validators.CourseByID(), controllers.AdminPublishCourse)
}
