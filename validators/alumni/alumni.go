package alumniValidator

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"techclass/middleware"

	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateAlumni validates the admin alumni creation payload
func CreateAlumni() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
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

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Email != "" && !emailRe.MatchString(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.GraduationYear < 2000 || reqData.GraduationYear > time.Now().Year() {
			errors["graduation_year"] = "Invalid graduation year!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAlumni", reqData)
		return c.Next()
	}
}

// UpdateAlumni validates the admin alumni update payload
func UpdateAlumni() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseAlumniID(c) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid alumni id!", nil)
		}

		reqData := new(struct {
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

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name cannot be empty!"
		}
		if reqData.Email != nil && *reqData.Email != "" && !emailRe.MatchString(*reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAlumniUpdate", reqData)
		return c.Next()
	}
}

// AlumniList validates the public listing query
func AlumniList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     *int  `query:"page"`
			Limit    *int  `query:"limit"`
			CourseID uint  `query:"course_id"`
			Featured *bool `query:"featured"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAlumniList", reqData)
		return c.Next()
	}
}

// AlumniByID validates the :id route param
func AlumniByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !parseAlumniID(c) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid alumni id!", nil)
		}
		return c.Next()
	}
}

func parseAlumniID(c *fiber.Ctx) bool {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return false
	}
	c.Locals("alumniID", uint(id))
	return true
}
