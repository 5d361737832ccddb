package controllers

import (
	"math"
	"sort"
	"time"

	"github.com/harshrjgithub/YouTube-LMS/database"
	"github.com/harshrjgithub/YouTube-LMS/middleware"
	"github.com/harshrjgithub/YouTube-LMS/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CompletedLectureView is one completed lecture in the progress response.
type CompletedLectureView struct {
	LectureID   uint       `json:"lecture_id"`
	Title       string     `json:"title"`
	Sequence    int        `json:"sequence"`
	CompletedAt *time.Time `json:"completed_at"`
}

// MarkLectureCompleted marks a lecture as completed for the current user
// and returns the recomputed course progress. Repeat calls are idempotent.
func MarkLectureCompleted(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := uint(c.Locals("courseID").(int))
	lectureID := uint(c.Locals("lectureID").(int))

	db := database.Database.Db

	var lecture models.Lecture
	if err := db.Where("id = ? AND course_id = ?", lectureID, courseID).First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found in this course!", nil)
	}

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not enrolled in this course!", nil)
	}

	if err := completeLecture(db, userID, courseID, lectureID); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to mark lecture as completed!", err)
	}

	progress, err := computeCourseProgress(db, userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute progress!", err)
	}

	if err := syncEnrollmentProgress(db, &enrollment, progress); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update enrollment!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture marked as completed!", progress)
}

// GetCourseProgress returns the live progress for the current user plus the
// list of completed lectures.
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := uint(c.Locals("courseID").(int))

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not enrolled in this course!", nil)
	}

	progress, err := computeCourseProgress(db, userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute progress!", err)
	}

	completed, err := completedLectures(db, userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch completed lectures!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":           progress,
		"completed_lectures": completed,
		"enrolled_at":        enrollment.EnrolledAt,
		"last_accessed_at":   enrollment.LastAccessedAt,
	})
}

// completeLecture upserts the progress row for (user, course, lecture).
// A repeat completion refreshes timestamps and bumps attempts; it never
// creates a second row.
func completeLecture(db *gorm.DB, userID, courseID, lectureID uint) error {
	now := time.Now()

	var progress models.LectureProgress
	err := db.Where("user_id = ? AND course_id = ? AND lecture_id = ?", userID, courseID, lectureID).
		First(&progress).Error
	if err == gorm.ErrRecordNotFound {
		progress = models.LectureProgress{
			UserID:         userID,
			CourseID:       courseID,
			LectureID:      lectureID,
			IsCompleted:    true,
			CompletedAt:    &now,
			LastAccessedAt: now,
		}
		return db.Create(&progress).Error
	}
	if err != nil {
		return err
	}

	progress.IsCompleted = true
	progress.CompletedAt = &now
	progress.LastAccessedAt = now
	progress.Attempts++
	return db.Save(&progress).Error
}

// computeCourseProgress derives the aggregate from the progress rows. The
// lecture count is read fresh so imports and deletions are reflected
// immediately. A course with no lectures reports 0 percent.
func computeCourseProgress(db *gorm.DB, userID, courseID uint) (*models.CourseProgress, error) {
	var totalLectures int64
	if err := db.Model(&models.Lecture{}).Where("course_id = ?", courseID).Count(&totalLectures).Error; err != nil {
		return nil, err
	}

	var completedCount int64
	if err := db.Model(&models.LectureProgress{}).
		Where("user_id = ? AND course_id = ? AND is_completed = ?", userID, courseID, true).
		Count(&completedCount).Error; err != nil {
		return nil, err
	}

	percentage := 0
	if totalLectures > 0 {
		percentage = int(math.Round(float64(completedCount) / float64(totalLectures) * 100))
	}

	return &models.CourseProgress{
		TotalLectures:      int(totalLectures),
		CompletedLectures:  int(completedCount),
		ProgressPercentage: percentage,
	}, nil
}

// syncEnrollmentProgress refreshes the cached summary on the enrollment.
func syncEnrollmentProgress(db *gorm.DB, enrollment *models.Enrollment, progress *models.CourseProgress) error {
	enrollment.ProgressPercentage = progress.ProgressPercentage
	enrollment.CompletedLectures = progress.CompletedLectures
	enrollment.TotalLectures = progress.TotalLectures
	enrollment.LastAccessedAt = time.Now()
	return db.Save(enrollment).Error
}

// completedLectures lists the user's completed lectures for a course in
// sequence order.
func completedLectures(db *gorm.DB, userID, courseID uint) ([]CompletedLectureView, error) {
	var rows []models.LectureProgress
	if err := db.Where("user_id = ? AND course_id = ? AND is_completed = ?", userID, courseID, true).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]CompletedLectureView, 0, len(rows))
	for _, row := range rows {
		var lecture models.Lecture
		if err := db.First(&lecture, row.LectureID).Error; err != nil {
			// Lecture removed after completion; skip the stale row
			continue
		}
		views = append(views, CompletedLectureView{
			LectureID:   lecture.ID,
			Title:       lecture.Title,
			Sequence:    lecture.Sequence,
			CompletedAt: row.CompletedAt,
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].Sequence < views[j].Sequence
	})

	return views, nil
}
