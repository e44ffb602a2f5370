package certificateController

import (
	"errors"
	"log"

	"techclass/database"
	"techclass/middleware"
	"techclass/models"
	certificate "techclass/services/certificate"
	"techclass/utils"
	validators "techclass/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

// AdminIssueCertificate issues a certificate for a student and course
func AdminIssueCertificate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIssue").(*validators.IssueRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Snapshot the course and student at issuance time; the certificate keeps
	// these even if the referenced records change later.
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var student models.User
	if err := db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	duration := reqData.DurationHours
	if duration == 0 {
		duration = course.Duration
	}

	input := certificate.IssueInput{
		CourseID:       course.ID,
		UserID:         student.ID,
		CourseName:     course.Title,
		StudentName:    student.Name,
		StudentEmail:   student.Email,
		CompletionDate: reqData.ParsedCompletionDate,
		Grade:          reqData.Grade,
		Score:          reqData.Score,
		DurationHours:  duration,
		Skills:         reqData.Skills,
	}

	cert, err := certService().Issue(input)
	if err != nil {
		var vErr *certificate.ValidationError
		if errors.As(err, &vErr) {
			return middleware.ValidationErrorResponse(c, vErr.Fields)
		}
		if errors.Is(err, certificate.ErrPersistenceExhausted) {
			log.Printf("Certificate identifier generation exhausted retries for user %d course %d", student.ID, course.ID)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to allocate certificate identifiers!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	// Notify the student and any configured webhook asynchronously
	go utils.SendCertificateEmail(cert.StudentEmail, cert.StudentName, cert.CourseName, cert.CertificateID, cert.VerificationCode)
	go utils.NotifyCertificateIssued(cert.CertificateID, cert.CourseName, cert.StudentName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", cert)
}

// AdminUpdateCertificate applies an administrative patch to a certificate
func AdminUpdateCertificate(c *fiber.Ctx) error {
	key, ok := c.Locals("certKey").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	reqData, ok := c.Locals("validatedUpdate").(*validators.UpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	patch := certificate.UpdatePatch{
		CertificateID:    reqData.CertificateID,
		VerificationCode: reqData.VerificationCode,
		CourseName:       reqData.CourseName,
		StudentName:      reqData.StudentName,
		StudentEmail:     reqData.StudentEmail,
		CompletionDate:   reqData.ParsedCompletionDate,
		IssuedBy:         reqData.IssuedBy,
		Grade:            reqData.Grade,
		Score:            reqData.Score,
		DurationHours:    reqData.DurationHours,
		Skills:           reqData.Skills,
		IsActive:         reqData.IsActive,
		IsVerified:       reqData.IsVerified,
	}

	cert, err := certService().Update(key, patch)
	if err != nil {
		if errors.Is(err, certificate.ErrImmutableField) {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Certificate identifiers cannot be changed!", nil)
		}
		var vErr *certificate.ValidationError
		if errors.As(err, &vErr) {
			return middleware.ValidationErrorResponse(c, vErr.Fields)
		}
		if errors.Is(err, certificate.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate updated successfully!", cert)
}

// AdminRevokeCertificate soft-deletes a certificate. Revoking twice is fine.
func AdminRevokeCertificate(c *fiber.Ctx) error {
	key, ok := c.Locals("certKey").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	if err := certService().Revoke(key); err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to revoke certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate revoked successfully!", nil)
}

// AdminGetCertificate fetches the full record by database key, revoked
// certificates included, so an admin can inspect and reactivate them.
func AdminGetCertificate(c *fiber.Ctx) error {
	key, ok := c.Locals("certKey").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	cert, err := certService().GetByKey(key)
	if err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", cert)
}

// AdminListCertificates lists full certificate rows with all filters
func AdminListCertificates(c *fiber.Ctx) error {
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

	filter := certificate.ListFilter{
		CourseID: reqData.CourseID,
		UserID:   reqData.UserID,
		Verified: reqData.Verified,
	}
	switch reqData.Active {
	case "true":
		active := true
		filter.Active = &active
	case "false":
		active := false
		filter.Active = &active
	case "all":
		filter.IncludeInactive = true
	}

	certs, total, err := certService().List(filter, page, limit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certs,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
