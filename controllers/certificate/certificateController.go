package certificateController

import (
	"errors"

	"techclass/config"
	"techclass/database"
	"techclass/middleware"
	certificate "techclass/services/certificate"
	validators "techclass/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

func certStore() *certificate.GormStore {
	return certificate.NewGormStore(database.Database.Db)
}

func certService() *certificate.Service {
	return certificate.NewService(certStore(), certificate.NewGenerator(), config.AppConfig.PlatformName)
}

func certGateway() *certificate.Gateway {
	return certificate.NewGateway(certStore())
}

// ListCertificates lists active certificates for the public site
func ListCertificates(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCertList").(*validators.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}

	// Public listing never sees revoked certificates
	filter := certificate.ListFilter{
		CourseID: reqData.CourseID,
		UserID:   reqData.UserID,
		Verified: reqData.Verified,
	}

	certs, total, err := certService().List(filter, page, limit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	views := make([]*certificate.PublicCertificateView, len(certs))
	for i := range certs {
		views[i] = certificate.PublicView(&certs[i])
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": views,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCertificate returns the public view of a certificate by its public ID
func GetCertificate(c *fiber.Ctx) error {
	certificateID := c.Params("certificate_id")

	view, err := certGateway().FetchPublicByID(certificateID)
	if err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", view)
}

// VerifyCertificate asserts a certificate's authenticity from its
// verification code. Unknown, malformed and revoked codes all produce the
// same not-found response.
func VerifyCertificate(c *fiber.Ctx) error {
	code := c.Params("code")

	result, err := certGateway().Verify(code)
	if err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified successfully!", result)
}

// DownloadCertificate accounts a certificate download and returns a summary
func DownloadCertificate(c *fiber.Ctx) error {
	certificateID := c.Params("certificate_id")

	cert, err := certService().RecordDownload(certificateID)
	if err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record download!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Download recorded successfully!", fiber.Map{
		"certificate":    certificate.PublicView(cert),
		"download_count": cert.DownloadCount,
		"downloaded_at":  cert.DownloadedAt,
	})
}
