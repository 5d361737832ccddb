package userRoutes

import (
	controllers "github.com/harshrjgithub/YouTube-LMS/controllers/course"
	"github.com/harshrjgithub/YouTube-LMS/middleware"
	courseValidator "github.com/harshrjgithub/YouTube-LMS/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up enrollment and progress-tracking routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/v1/users")

	// Enrollment
	userGroup.Post("/enroll/:courseId", middleware.JWTMiddleware, courseValidator.CourseIDParam("courseId"), controllers.EnrollInCourse)
	userGroup.Get("/enrolled-courses", middleware.JWTMiddleware, controllers.GetEnrolledCourses)

	// Progress tracking
	userGroup.Post("/progress/:courseId/:lectureId/complete", middleware.JWTMiddleware, courseValidator.LectureIDParams(), controllers.MarkLectureCompleted)
	userGroup.Get("/progress/:courseId", middleware.JWTMiddleware, courseValidator.CourseIDParam("courseId"), controllers.GetCourseProgress)
}
