package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/harshrjgithub/YouTube-LMS/database"
	"github.com/harshrjgithub/YouTube-LMS/middleware"
	"github.com/harshrjgithub/YouTube-LMS/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// isDuplicateKeyError matches unique-index violations from both the
// postgres and sqlite drivers.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// EnrollInCourse links the current user to a course. Repeat enrollment is
// rejected, not treated as a no-op.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := db.Where("id = ? AND is_published = ?", courseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already enrolled in this course!", nil)
	}

	now := time.Now()
	enrollment := models.Enrollment{
		UserID:         userID,
		CourseID:       uint(courseID),
		EnrolledAt:     now,
		LastAccessedAt: now,
	}

	// The unique (user_id, course_id) index is the final guard against a
	// concurrent duplicate enroll.
	if err := db.Create(&enrollment).Error; err != nil {
		if isDuplicateKeyError(err) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already enrolled in this course!", nil)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to enroll in course!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrolledCourses lists the current user's enrollments with the course
// and the live progress summary.
func GetEnrolledCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).Preload("Course").Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!", err)
	}

	type enrolledCourse struct {
		models.Enrollment
		Progress *models.CourseProgress `json:"progress"`
	}

	result := make([]enrolledCourse, len(enrollments))
	for i, enrollment := range enrollments {
		progress, err := computeCourseProgress(db, userID, enrollment.CourseID)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute progress!", err)
		}
		result[i] = enrolledCourse{Enrollment: enrollment, Progress: progress}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}

// GetCourseStudents lists users enrolled in a course. The reverse view is
// computed by query; no student list is stored on the course.
func GetCourseStudents(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollments []models.Enrollment
	if err := db.Where("course_id = ?", courseID).Order("enrolled_at asc").Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!", err)
	}

	type studentView struct {
		UserID             uint      `json:"user_id"`
		Name               string    `json:"name"`
		Email              string    `json:"email"`
		EnrolledAt         time.Time `json:"enrolled_at"`
		ProgressPercentage int       `json:"progress_percentage"`
	}

	students := make([]studentView, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var user models.User
		if err := db.First(&user, enrollment.UserID).Error; err != nil {
			continue
		}
		students = append(students, studentView{
			UserID:             user.ID,
			Name:               user.Name,
			Email:              user.Email,
			EnrolledAt:         enrollment.EnrolledAt,
			ProgressPercentage: enrollment.ProgressPercentage,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled students fetched successfully!", fiber.Map{
		"course_id": course.ID,
		"students":  students,
		"total":     len(students),
	})
}
