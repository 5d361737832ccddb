package courseRoutes

import (
	controllers "github.com/harshrjgithub/YouTube-LMS/controllers/course"
	"github.com/harshrjgithub/YouTube-LMS/middleware"
	courseValidator "github.com/harshrjgithub/YouTube-LMS/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up public course routes and admin course
// management. Static segments are registered before parameter routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/v1/courses")

	// Admin listing (includes unpublished) and analytics
	courseGroup.Get("/all", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/analytics", middleware.JWTMiddleware, middleware.AdminOnly, controllers.GetAnalytics)

	// Public catalog
	courseGroup.Get("/", courseValidator.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", courseValidator.CourseIDParam("id"), controllers.GetCourseByID)
	courseGroup.Get("/:courseId/lectures", courseValidator.CourseIDParam("courseId"), controllers.GetCourseLectures)

	// Course management (admin)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CourseIDParam("id"), courseValidator.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CourseIDParam("id"), controllers.DeleteCourse)
	courseGroup.Post("/:id/publish", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CourseIDParam("id"), controllers.TogglePublishCourse)
	courseGroup.Get("/:id/students", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CourseIDParam("id"), controllers.GetCourseStudents)

	// Lecture management (admin)
	courseGroup.Post("/:courseId/lectures", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CourseIDParam("courseId"), courseValidator.CreateLecture(), controllers.CreateLecture)
	courseGroup.Post("/:courseId/lectures/import-playlist", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CourseIDParam("courseId"), courseValidator.ImportPlaylist(), controllers.ImportPlaylistLectures)
}
