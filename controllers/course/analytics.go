package controllers

import (
	"math"
	"sort"
	"time"

	"github.com/harshrjgithub/YouTube-LMS/database"
	"github.com/harshrjgithub/YouTube-LMS/middleware"
	"github.com/harshrjgithub/YouTube-LMS/models"

	"github.com/gofiber/fiber/v2"
)

// GetAnalytics returns dashboard statistics for admins.
func GetAnalytics(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses int64
	db.Model(&models.Course{}).Count(&totalCourses)

	var totalLectures int64
	db.Model(&models.Lecture{}).Count(&totalLectures)

	var totalEnrollments int64
	db.Model(&models.Enrollment{}).Count(&totalEnrollments)

	var totalStudents int64
	db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&totalStudents)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	var recentCourses int64
	db.Model(&models.Course{}).Where("created_at >= ?", thirtyDaysAgo).Count(&recentCourses)

	avgLecturesPerCourse := 0.0
	if totalCourses > 0 {
		avgLecturesPerCourse = math.Round(float64(totalLectures)/float64(totalCourses)*10) / 10
	}

	// Courses by category
	type categoryCount struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}
	var byCategory []categoryCount
	db.Model(&models.Course{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Order("count desc").
		Scan(&byCategory)

	// Top courses by enrollment
	type popularCourse struct {
		CourseID        uint   `json:"course_id"`
		Title           string `json:"title"`
		Category        string `json:"category"`
		EnrollmentCount int64  `json:"enrollment_count"`
		LectureCount    int64  `json:"lecture_count"`
	}
	var courses []models.Course
	db.Find(&courses)

	popular := make([]popularCourse, 0, len(courses))
	for _, course := range courses {
		var enrollmentCount, lectureCount int64
		db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollmentCount)
		db.Model(&models.Lecture{}).Where("course_id = ?", course.ID).Count(&lectureCount)
		popular = append(popular, popularCourse{
			CourseID:        course.ID,
			Title:           course.Title,
			Category:        course.Category,
			EnrollmentCount: enrollmentCount,
			LectureCount:    lectureCount,
		})
	}
	sort.Slice(popular, func(i, j int) bool {
		return popular[i].EnrollmentCount > popular[j].EnrollmentCount
	})
	if len(popular) > 5 {
		popular = popular[:5]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics data retrieved successfully!", fiber.Map{
		"overview": fiber.Map{
			"total_courses":           totalCourses,
			"total_lectures":          totalLectures,
			"total_enrollments":       totalEnrollments,
			"total_students":          totalStudents,
			"recent_courses":          recentCourses,
			"avg_lectures_per_course": avgLecturesPerCourse,
		},
		"popular_courses":     popular,
		"courses_by_category": byCategory,
	})
}
