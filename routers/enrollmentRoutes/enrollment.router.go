package enrollmentRoutes

import (
	enrollmentController "enrollapi/controllers/enrollment"
	"enrollapi/middleware"
	enrollmentValidator "enrollapi/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes registers the enrollment routes. Enroll and withdraw
// are behind the admin guard; the queries are open.
func SetupEnrollmentRoutes(app *fiber.App, ctrl *enrollmentController.Controller) {
	enrollmentGroup := app.Group("/api/v1/enrollment")

	enrollmentGroup.Post("/", enrollmentValidator.CreateEnrollment(), middleware.AdminGuard, ctrl.EnrollUser)
	enrollmentGroup.Get("/course/:courseId", enrollmentValidator.QueryByCourse(), ctrl.QueryEnrollments)
	enrollmentGroup.Get("/user/:userId", enrollmentValidator.QueryByUser(), ctrl.QueryEnrollments)
	enrollmentGroup.Get("/:enrollmentId", enrollmentValidator.GetEnrollmentByID(), ctrl.GetEnrollmentByID)
	enrollmentGroup.Delete("/:enrollmentId", enrollmentValidator.WithdrawEnrollment(), middleware.AdminGuard, ctrl.WithdrawEnrollment)
}
