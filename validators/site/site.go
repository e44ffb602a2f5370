package siteValidator

import (
	"regexp"
	"strconv"
	"strings"

	"techclass/middleware"

	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateContactInfo validates the admin contact payload
func CreateContactInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Label     string `json:"label"`
			Email     string `json:"email"`
			Phone     string `json:"phone"`
			Address   string `json:"address"`
			IsPrimary bool   `json:"is_primary"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Label) == "" {
			errors["label"] = "Label is required!"
		}
		if reqData.Email == "" && reqData.Phone == "" {
			errors["contact"] = "Either email or phone is required!"
		}
		if reqData.Email != "" && !emailRe.MatchString(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}

// ContactByID validates the :id route param
func ContactByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid contact id!", nil)
		}
		c.Locals("contactID", uint(id))
		return c.Next()
	}
}

// UpdateSiteSettings validates the admin settings payload
func UpdateSiteSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SiteName        *string `json:"site_name"`
			Tagline         *string `json:"tagline"`
			LogoURL         *string `json:"logo_url"`
			FacebookURL     *string `json:"facebook_url"`
			InstagramURL    *string `json:"instagram_url"`
			LinkedinURL     *string `json:"linkedin_url"`
			MaintenanceMode *bool   `json:"maintenance_mode"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SiteName != nil && strings.TrimSpace(*reqData.SiteName) == "" {
			errors["site_name"] = "Site name cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSettings", reqData)
		return c.Next()
	}
}
