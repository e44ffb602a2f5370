package siteRoutes

import (
	alumniControllers "techclass/controllers/alumni"
	siteControllers "techclass/controllers/site"
	"techclass/middleware"
	alumniValidators "techclass/validators/alumni"
	siteValidators "techclass/validators/site"

	"github.com/gofiber/fiber/v2"
)

// SetupSiteRoutes sets up alumni, contact-info and site-settings routes
func SetupSiteRoutes(app *fiber.App) {
	// Public site content
	app.Get("/alumni/list", alumniValidators.AlumniList(), alumniControllers.GetAlumniList)
	app.Get("/contact", siteControllers.GetContactInfo)
	app.Get("/settings", siteControllers.GetSiteSettings)

	// Alumni management
	alumniGroup := app.Group("/admin/alumni")
	alumniGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, alumniValidators.CreateAlumni(), alumniControllers.AdminCreateAlumni)
	alumniGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, alumniValidators.UpdateAlumni(), alumniControllers.AdminUpdateAlumni)
	alumniGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, alumniValidators.AlumniByID(), alumniControllers.AdminDeleteAlumni)

	// Contact & settings management
	contactGroup := app.Group("/admin/contact")
	contactGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, siteValidators.CreateContactInfo(), siteControllers.AdminCreateContactInfo)
	contactGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, siteValidators.ContactByID(), siteControllers.AdminDeleteContactInfo)

	settingsGroup := app.Group("/admin/settings")
	settingsGroup.Put("/", middleware.JWTMiddleware, middleware.AdminOnly, siteValidators.UpdateSiteSettings(), siteControllers.AdminUpdateSiteSettings)
}
