package alumniController

import (
	"techclass/database"
	"techclass/middleware"
	"techclass/models"

	"github.com/gofiber/fiber/v2"
)

// GetAlumniList lists alumni for the public site
func GetAlumniList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAlumniList").(*struct {
		Page     *int  `query:"page"`
		Limit    *int  `query:"limit"`
		CourseID uint  `query:"course_id"`
		Featured *bool `query:"featured"`
	})
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
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Alumni{}).Where("is_deleted = ?", false)
	if reqData.CourseID != 0 {
		db = db.Where("course_id = ?", reqData.CourseID)
	}
	if reqData.Featured != nil {
		db = db.Where("is_featured = ?", *reqData.Featured)
	}

	var total int64
	db.Count(&total)

	var alumni []models.Alumni
	if err := db.Offset(offset).Limit(limit).Order("graduation_year desc").Find(&alumni).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch alumni!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Alumni fetched successfully!", fiber.Map{
		"alumni": alumni,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminCreateAlumni adds an alumni entry
func AdminCreateAlumni(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAlumni").(*struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		CourseID       uint   `json:"course_id"`
		GraduationYear int    `json:"graduation_year"`
		CurrentRole    string `json:"current_role"`
		Company        string `json:"company"`
		Testimonial    string `json:"testimonial"`
		PhotoURL       string `json:"photo_url"`
		IsFeatured     bool   `json:"is_featured"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	alumni := models.Alumni{
		Name:           reqData.Name,
		Email:          reqData.Email,
		CourseID:       reqData.CourseID,
		GraduationYear: reqData.GraduationYear,
		CurrentRole:    reqData.CurrentRole,
		Company:        reqData.Company,
		Testimonial:    reqData.Testimonial,
		PhotoURL:       reqData.PhotoURL,
		IsFeatured:     reqData.IsFeatured,
	}

	if err := database.Database.Db.Create(&alumni).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create alumni entry!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Alumni entry created successfully!", alumni)
}

// AdminUpdateAlumni updates an alumni entry
func AdminUpdateAlumni(c *fiber.Ctx) error {
	alumniID, ok := c.Locals("alumniID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid alumni id!", nil)
	}

	reqData, ok := c.Locals("validatedAlumniUpdate").(*struct {
		Name           *string `json:"name"`
		Email          *string `json:"email"`
		CourseID       *uint   `json:"course_id"`
		GraduationYear *int    `json:"graduation_year"`
		CurrentRole    *string `json:"current_role"`
		Company        *string `json:"company"`
		Testimonial    *string `json:"testimonial"`
		PhotoURL       *string `json:"photo_url"`
		IsFeatured     *bool   `json:"is_featured"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var alumni models.Alumni
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", alumniID, false).First(&alumni).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Alumni entry not found!", nil)
	}

	if reqData.Name != nil {
		alumni.Name = *reqData.Name
	}
	if reqData.Email != nil {
		alumni.Email = *reqData.Email
	}
	if reqData.CourseID != nil {
		alumni.CourseID = *reqData.CourseID
	}
	if reqData.GraduationYear != nil {
		alumni.GraduationYear = *reqData.GraduationYear
	}
	if reqData.CurrentRole != nil {
		alumni.CurrentRole = *reqData.CurrentRole
	}
	if reqData.Company != nil {
		alumni.Company = *reqData.Company
	}
	if reqData.Testimonial != nil {
		alumni.Testimonial = *reqData.Testimonial
	}
	if reqData.PhotoURL != nil {
		alumni.PhotoURL = *reqData.PhotoURL
	}
	if reqData.IsFeatured != nil {
		alumni.IsFeatured = *reqData.IsFeatured
	}

	if err := database.Database.Db.Save(&alumni).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update alumni entry!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Alumni entry updated successfully!", alumni)
}

// AdminDeleteAlumni soft-deletes an alumni entry
func AdminDeleteAlumni(c *fiber.Ctx) error {
	alumniID, ok := c.Locals("alumniID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid alumni id!", nil)
	}

	res := database.Database.Db.Model(&models.Alumni{}).
		Where("id = ? AND is_deleted = ?", alumniID, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete alumni entry!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Alumni entry not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Alumni entry deleted successfully!", nil)
}
