package siteController

import (
	"errors"

	"techclass/database"
	"techclass/middleware"
	"techclass/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetContactInfo lists contact channels for the public site
func GetContactInfo(c *fiber.Ctx) error {
	var contacts []models.ContactInfo
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("is_primary desc, created_at asc").
		Find(&contacts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch contact info!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact info fetched successfully!", contacts)
}

// AdminCreateContactInfo adds a contact channel
func AdminCreateContactInfo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Label     string `json:"label"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
		IsPrimary bool   `json:"is_primary"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	contact := models.ContactInfo{
		Label:     reqData.Label,
		Email:     reqData.Email,
		Phone:     reqData.Phone,
		Address:   reqData.Address,
		IsPrimary: reqData.IsPrimary,
	}

	if err := database.Database.Db.Create(&contact).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create contact info!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Contact info created successfully!", contact)
}

// AdminDeleteContactInfo soft-deletes a contact channel
func AdminDeleteContactInfo(c *fiber.Ctx) error {
	contactID, ok := c.Locals("contactID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid contact id!", nil)
	}

	res := database.Database.Db.Model(&models.ContactInfo{}).
		Where("id = ? AND is_deleted = ?", contactID, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete contact info!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contact info not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact info deleted successfully!", nil)
}

// getOrCreateSettings fetches the settings row, creating it on first access.
// The creation is explicit here rather than hidden in schema defaults.
func getOrCreateSettings(db *gorm.DB) (*models.SiteSetting, error) {
	var settings models.SiteSetting
	err := db.Order("id asc").First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.SiteSetting{}
	if err := db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetSiteSettings returns the site-wide settings row
func GetSiteSettings(c *fiber.Ctx) error {
	settings, err := getOrCreateSettings(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch site settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Site settings fetched successfully!", settings)
}

// AdminUpdateSiteSettings updates the settings row
func AdminUpdateSiteSettings(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSettings").(*struct {
		SiteName        *string `json:"site_name"`
		Tagline         *string `json:"tagline"`
		LogoURL         *string `json:"logo_url"`
		FacebookURL     *string `json:"facebook_url"`
		InstagramURL    *string `json:"instagram_url"`
		LinkedinURL     *string `json:"linkedin_url"`
		MaintenanceMode *bool   `json:"maintenance_mode"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	settings, err := getOrCreateSettings(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch site settings!", nil)
	}

	if reqData.SiteName != nil {
		settings.SiteName = *reqData.SiteName
	}
	if reqData.Tagline != nil {
		settings.Tagline = *reqData.Tagline
	}
	if reqData.LogoURL != nil {
		settings.LogoURL = *reqData.LogoURL
	}
	if reqData.FacebookURL != nil {
		settings.FacebookURL = *reqData.FacebookURL
	}
	if reqData.InstagramURL != nil {
		settings.InstagramURL = *reqData.InstagramURL
	}
	if reqData.LinkedinURL != nil {
		settings.LinkedinURL = *reqData.LinkedinURL
	}
	if reqData.MaintenanceMode != nil {
		settings.MaintenanceMode = *reqData.MaintenanceMode
	}

	if err := database.Database.Db.Save(settings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update site settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Site settings updated successfully!", settings)
}
