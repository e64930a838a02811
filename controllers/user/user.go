package userController

import (
	"log"

	"enrollapi/middleware"
	"enrollapi/service"
	userValidator "enrollapi/validators/user"

	"github.com/gofiber/fiber/v2"
)

// Controller holds the services the user routes need.
type Controller struct {
	Users *service.UserService
}

func New(users *service.UserService) *Controller {
	return &Controller{Users: users}
}

func (ctrl *Controller) CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user := ctrl.Users.CreateUser(reqData.Name, reqData.Email)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", user)
}

func (ctrl *Controller) GetUserByID(c *fiber.Ctx) error {
	userID := c.Locals("userId").(int)

	user, err := ctrl.Users.GetUserByID(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

func (ctrl *Controller) FindUsers(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	name := c.Locals("name").(string)

	users := ctrl.Users.FindUsers(email, name)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

func (ctrl *Controller) EditUser(c *fiber.Ctx) error {
	userID := c.Locals("userId").(int)
	reqData, ok := c.Locals("validatedUserPatch").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := ctrl.Users.EditUser(userID, reqData.Name, reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

func (ctrl *Controller) DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("userId").(int)

	user, err := ctrl.Users.DeleteUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", user)
}

func (ctrl *Controller) GetUsersByCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(int)

	users, err := ctrl.Users.GetUsersByCourseID(courseID)
	if err != nil {
		if service.IsBadInput(err) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not found!", nil)
		}
		log.Printf("GetUsersByCourse: courseId=%d users=%v err=%v", courseID, users, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}
