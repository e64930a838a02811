package enrollmentValidator

import (
	"strconv"
	"strings"

	"enrollapi/middleware"
	"enrollapi/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateEnrollmentRequest struct {
	UserID   int    `json:"userId" validate:"required,gt=0"`
	CourseID int    `json:"courseId" validate:"required,gt=0"`
	Role     string `json:"role" validate:"required,oneof=student teacher"`
}

// EnrollmentQuery carries the optional filters of the two query routes.
type EnrollmentQuery struct {
	UserID   int
	CourseID int
	Role     string
}

func parseID(c *fiber.Ctx, param string) (int, bool) {
	idStr := strings.TrimSpace(c.Params(param))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func isValidRole(role string) bool {
	return role == models.RoleStudent || role == models.RoleTeacher
}

func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEnrollmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Role is case-insensitive on the wire, stored lowercased.
		reqData.Role = strings.ToLower(reqData.Role)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "UserID":
					errors["userId"] = "User ID must be a positive integer!"
				case "CourseID":
					errors["courseId"] = "Course ID must be a positive integer!"
				case "Role":
					errors["role"] = `Role must be either "student" or "teacher"`
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

func WithdrawEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := parseID(c, "enrollmentId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
		}
		c.Locals("enrollmentId", enrollmentID)
		return c.Next()
	}
}

func GetEnrollmentByID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := parseID(c, "enrollmentId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
		}
		c.Locals("enrollmentId", enrollmentID)
		return c.Next()
	}
}

// QueryByCourse validates the course id path param plus the optional
// userId/role query filters.
func QueryByCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseID(c, "courseId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		errors := make(map[string]string)
		query := &EnrollmentQuery{CourseID: courseID}

		if userIDStr := c.Query("userId"); userIDStr != "" {
			userID, err := strconv.Atoi(userIDStr)
			if err != nil || userID <= 0 {
				errors["userId"] = "User ID must be a positive integer!"
			} else {
				query.UserID = userID
			}
		}

		if role := c.Query("role"); role != "" {
			role = strings.ToLower(role)
			if !isValidRole(role) {
				errors["role"] = `Role must be either "student" or "teacher"`
			} else {
				query.Role = role
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("enrollmentQuery", query)
		return c.Next()
	}
}

// QueryByUser validates the user id path param plus the optional
// courseId/role query filters.
func QueryByUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := parseID(c, "userId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
		}

		errors := make(map[string]string)
		query := &EnrollmentQuery{UserID: userID}

		if courseIDStr := c.Query("courseId"); courseIDStr != "" {
			courseID, err := strconv.Atoi(courseIDStr)
			if err != nil || courseID <= 0 {
				errors["courseId"] = "Course ID must be a positive integer!"
			} else {
				query.CourseID = courseID
			}
		}

		if role := c.Query("role"); role != "" {
			role = strings.ToLower(role)
			if !isValidRole(role) {
				errors["role"] = `Role must be either "student" or "teacher"`
			} else {
				query.Role = role
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("enrollmentQuery", query)
		return c.Next()
	}
}
