package courseController

import (
	"log"

	"enrollapi/middleware"
	"enrollapi/service"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Courses *service.CourseService
}

func New(courses *service.CourseService) *Controller {
	return &Controller{Courses: courses}
}

func (ctrl *Controller) GetCourseByID(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(int)

	course, err := ctrl.Courses.GetCourseByID(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func (ctrl *Controller) GetCoursesByUser(c *fiber.Ctx) error {
	userID := c.Locals("userId").(int)

	courses, err := ctrl.Courses.GetCoursesByUserID(userID)
	if err != nil {
		if service.IsBadInput(err) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not found!", nil)
		}
		log.Printf("GetCoursesByUser: userId=%d courses=%v err=%v", userID, courses, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}
