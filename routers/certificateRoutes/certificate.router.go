package certificateRoutes

import (
	controllers "techclass/controllers/certificate"
	"techclass/middleware"
	validators "techclass/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up public certificate lookup/verification and
// admin issuance/management routes
func SetupCertificateRoutes(app *fiber.App) {
	// Public: lookup, trust verification, download accounting. No auth —
	// certificates are meant to be checked by anonymous third parties.
	certGroup := app.Group("/certificate")
	certGroup.Get("/list", validators.CertificateList(), controllers.ListCertificates)
	certGroup.Get("/verify/:code", controllers.VerifyCertificate)
	certGroup.Get("/:certificate_id", controllers.GetCertificate)
	certGroup.Post("/:certificate_id/download", controllers.DownloadCertificate)

	// Certificate management
	adminGroup := app.Group("/admin/certificate")
	adminGroup.Post("/issue", middleware.JWTMiddleware, middleware.AdminOnly, validators.IssueCertificate(), controllers.AdminIssueCertificate)
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly, validators.CertificateList(), controllers.AdminListCertificates)
	adminGroup.Get("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.CertificateByKey(), controllers.AdminGetCertificate)
	adminGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.UpdateCertificate(), controllers.AdminUpdateCertificate)
	adminGroup.Post("/:id/revoke", middleware.JWTMiddleware, middleware.AdminOnly, validators.CertificateByKey(), controllers.AdminRevokeCertificate)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/stats", middleware.JWTMiddleware, middleware.AdminOnly, controllers.AdminDashboardStats)
}
