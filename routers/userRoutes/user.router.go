package userRoutes

import (
	userController "enrollapi/controllers/user"
	"enrollapi/middleware"
	userValidator "enrollapi/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes registers all user routes. Only create, edit and delete are
// behind the admin guard.
func SetupUserRoutes(app *fiber.App, ctrl *userController.Controller) {
	userGroup := app.Group("/api/v1/user")

	userGroup.Post("/", userValidator.CreateUser(), middleware.AdminGuard, ctrl.CreateUser)
	userGroup.Get("/", userValidator.FindUsers(), ctrl.FindUsers)
	userGroup.Get("/:courseId/users", userValidator.GetUsersByCourse(), ctrl.GetUsersByCourse)
	userGroup.Get("/:id", userValidator.GetUserByID(), ctrl.GetUserByID)
	userGroup.Put("/:id", userValidator.EditUser(), middleware.AdminGuard, ctrl.EditUser)
	userGroup.Delete("/:id", userValidator.DeleteUser(), middleware.AdminGuard, ctrl.DeleteUser)
}
