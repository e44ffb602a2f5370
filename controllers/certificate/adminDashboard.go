package certificateController

import (
	"techclass/database"
	"techclass/middleware"
	"techclass/models"
	certModels "techclass/models/certificate"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminDashboardStats returns platform-wide counters for the admin dashboard
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCertificates, activeCertificates, verifiedCertificates, revokedCertificates int64
	db.Model(&certModels.Certificate{}).Count(&totalCertificates)
	db.Model(&certModels.Certificate{}).Where("is_active = ?", true).Count(&activeCertificates)
	db.Model(&certModels.Certificate{}).Where("is_active = ? AND is_verified = ?", true, true).Count(&verifiedCertificates)
	db.Model(&certModels.Certificate{}).Where("is_active = ?", false).Count(&revokedCertificates)

	var issuedThisMonth int64
	db.Model(&certModels.Certificate{}).
		Where("created_at >= ?", now.BeginningOfMonth()).
		Count(&issuedThisMonth)

	var totalDownloads int64
	db.Model(&certModels.Certificate{}).
		Select("COALESCE(SUM(download_count), 0)").
		Scan(&totalDownloads)

	var totalCourses, publishedCourses int64
	db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)

	var totalStudents int64
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, "USER").Count(&totalStudents)

	var totalAlumni int64
	db.Model(&models.Alumni{}).Where("is_deleted = ?", false).Count(&totalAlumni)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"certificates": fiber.Map{
			"total":             totalCertificates,
			"active":            activeCertificates,
			"verified":          verifiedCertificates,
			"revoked":           revokedCertificates,
			"issued_this_month": issuedThisMonth,
			"total_downloads":   totalDownloads,
		},
		"courses": fiber.Map{
			"total":     totalCourses,
			"published": publishedCourses,
		},
		"students": totalStudents,
		"alumni":   totalAlumni,
	})
}
