package enrollmentController

import (
	"log"

	"enrollapi/middleware"
	"enrollapi/service"
	enrollmentValidator "enrollapi/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Enrollments *service.EnrollmentService
}

func New(enrollments *service.EnrollmentService) *Controller {
	return &Controller{Enrollments: enrollments}
}

// EnrollUser enrolls a user in a course. Re-enrolling the same user, course
// and role returns the existing enrollment, so the call is idempotent.
func (ctrl *Controller) EnrollUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.CreateEnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	enrollment, err := ctrl.Enrollments.EnrollUser(reqData.UserID, reqData.CourseID, reqData.Role)
	if err != nil {
		if service.IsBadInput(err) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User or course not found!", nil)
		}
		log.Printf("EnrollUser: enrollment=%v err=%v", enrollment, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll user!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

func (ctrl *Controller) WithdrawEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentId").(int)

	enrollment, err := ctrl.Enrollments.Withdraw(enrollmentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawn successfully!", enrollment)
}

func (ctrl *Controller) GetEnrollmentByID(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentId").(int)

	enrollment, err := ctrl.Enrollments.GetEnrollmentByID(enrollmentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// QueryEnrollments serves both filtered query routes. The service applies at
// most one predicate (courseId > userId > role), so the route only decides
// which ids come from the path and which from the query string.
func (ctrl *Controller) QueryEnrollments(c *fiber.Ctx) error {
	query, ok := c.Locals("enrollmentQuery").(*enrollmentValidator.EnrollmentQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	enrollments := ctrl.Enrollments.QueryEnrollments(query.UserID, query.CourseID, query.Role)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}
