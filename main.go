package main

import (
	"log"

	"enrollapi/config"
	courseController "enrollapi/controllers/course"
	enrollmentController "enrollapi/controllers/enrollment"
	userController "enrollapi/controllers/user"
	"enrollapi/middleware"
	courseRoutes "enrollapi/routers/courseRoutes"
	enrollmentRoutes "enrollapi/routers/enrollmentRoutes"
	userRoutes "enrollapi/routers/userRoutes"
	"enrollapi/service"
	"enrollapi/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// newApp wires stores, services, controllers and routes into a fiber app.
// State lives only in the stores created here and starts empty on every boot.
func newApp() *fiber.App {
	users := store.NewUserStore()
	courses := store.NewCourseStore()
	enrollments := store.NewEnrollmentStore()

	userSvc := service.NewUserService(users, courses, enrollments)
	courseSvc := service.NewCourseService(users, courses, enrollments)
	enrollmentSvc := service.NewEnrollmentService(users, courses, enrollments)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(middleware.RequestID)

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${respHeader:X-Request-Id}\n",
	}))

	userRoutes.SetupUserRoutes(app, userController.New(userSvc))
	courseRoutes.SetupCourseRoutes(app, courseController.New(courseSvc))
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentController.New(enrollmentSvc))

	return app
}

func main() {
	config.LoadConfig()

	app := newApp()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
