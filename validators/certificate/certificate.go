package certificateValidator

import (
	"strconv"
	"strings"
	"time"

	"techclass/middleware"

	"github.com/gofiber/fiber/v2"
)

// IssueRequest is the admin issuance payload. Course and student snapshots
// are captured server-side from the referenced records; the optional fields
// here are descriptive metadata.
type IssueRequest struct {
	CourseID       uint     `json:"course_id"`
	UserID         uint     `json:"user_id"`
	CompletionDate string   `json:"completion_date"` // RFC3339, optional
	Grade          string   `json:"grade"`
	Score          *float64 `json:"score"`
	DurationHours  int64    `json:"duration_hours"`
	Skills         []string `json:"skills"`

	ParsedCompletionDate *time.Time `json:"-"`
}

// UpdateRequest is the admin patch payload. certificate_id and
// verification_code are parsed so the controller can reject the attempt
// explicitly instead of silently dropping the fields.
type UpdateRequest struct {
	CertificateID    *string `json:"certificate_id"`
	VerificationCode *string `json:"verification_code"`

	CourseName     *string   `json:"course_name"`
	StudentName    *string   `json:"student_name"`
	StudentEmail   *string   `json:"student_email"`
	CompletionDate *string   `json:"completion_date"` // RFC3339
	IssuedBy       *string   `json:"issued_by"`
	Grade          *string   `json:"grade"`
	Score          *float64  `json:"score"`
	DurationHours  *int64    `json:"duration_hours"`
	Skills         *[]string `json:"skills"`
	IsActive       *bool     `json:"is_active"`
	IsVerified     *bool     `json:"is_verified"`

	ParsedCompletionDate *time.Time `json:"-"`
}

// ListRequest is the shared listing query.
type ListRequest struct {
	Page     *int   `query:"page"`
	Limit    *int   `query:"limit"`
	CourseID uint   `query:"course_id"`
	UserID   uint   `query:"user_id"`
	Verified *bool  `query:"verified"`
	Active   string `query:"active"` // admin only: "true", "false" or "all"
}

// IssueCertificate validates the issuance payload
func IssueCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(IssueRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course is required!"
		}
		if reqData.UserID == 0 {
			errors["user_id"] = "Student is required!"
		}
		if reqData.Score != nil && (*reqData.Score < 0 || *reqData.Score > 100) {
			errors["score"] = "Score must be between 0 and 100!"
		}
		if strings.TrimSpace(reqData.CompletionDate) != "" {
			parsed, err := time.Parse(time.RFC3339, reqData.CompletionDate)
			if err != nil {
				errors["completion_date"] = "Completion date must be RFC3339!"
			} else {
				reqData.ParsedCompletionDate = &parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedIssue", reqData)
		return c.Next()
	}
}

// UpdateCertificate validates the admin patch payload
func UpdateCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
		}
		c.Locals("certKey", id)

		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Score != nil && (*reqData.Score < 0 || *reqData.Score > 100) {
			errors["score"] = "Score must be between 0 and 100!"
		}
		if reqData.CompletionDate != nil {
			parsed, err := time.Parse(time.RFC3339, *reqData.CompletionDate)
			if err != nil {
				errors["completion_date"] = "Completion date must be RFC3339!"
			} else {
				reqData.ParsedCompletionDate = &parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdate", reqData)
		return c.Next()
	}
}

// CertificateByKey validates the :id route param for admin lookups
func CertificateByKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
		}
		c.Locals("certKey", id)
		return c.Next()
	}
}

// CertificateList validates listing queries
func CertificateList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListRequest)
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
		if reqData.Active != "" && reqData.Active != "true" && reqData.Active != "false" && reqData.Active != "all" {
			errors["active"] = "Active must be true, false or all!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCertList", reqData)
		return c.Next()
	}
}

func parseIDParam(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}
