package courseRoutes

import (
	courseController "enrollapi/controllers/course"
	courseValidator "enrollapi/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the read-only course routes.
func SetupCourseRoutes(app *fiber.App, ctrl *courseController.Controller) {
	courseGroup := app.Group("/api/v1/course")

	courseGroup.Get("/users/:userId", courseValidator.GetCoursesByUser(), ctrl.GetCoursesByUser)
	courseGroup.Get("/:courseId", courseValidator.GetCourseByID(), ctrl.GetCourseByID)
}
