package controllers

import (
	"log"
	"strings"

	"github.com/harshrjgithub/YouTube-LMS/config"
	"github.com/harshrjgithub/YouTube-LMS/database"
	"github.com/harshrjgithub/YouTube-LMS/middleware"
	"github.com/harshrjgithub/YouTube-LMS/models"
	"github.com/harshrjgithub/YouTube-LMS/youtube"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse creates a new course. When a playlist reference is supplied
// the playlist is imported into the fresh course in the same request.
func CreateCourse(c *fiber.Ctx) error {
	admin, ok := c.Locals("user").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"courseTitle"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Level       string `json:"level"`
		PlaylistID  string `json:"playlistId"`
		IsPublished *bool  `json:"isPublished"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	isPublished := true
	if reqData.IsPublished != nil {
		isPublished = *reqData.IsPublished
	}

	creatorID := admin.ID
	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		Level:       reqData.Level,
		CreatorID:   &creatorID,
		IsPublished: isPublished,
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course!", err)
	}

	// Optional inline playlist import
	if reqData.PlaylistID != "" {
		playlistID, err := youtube.ExtractPlaylistID(reqData.PlaylistID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid playlist ID!", nil)
		}
		if config.AppConfig.YouTubeAPIKey == "" {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "YouTube API key not configured!", youtube.ErrAPIKeyMissing)
		}

		client := youtube.NewClient(config.AppConfig.YouTubeAPIBase, config.AppConfig.YouTubeAPIKey)
		videos, err := client.PlaylistVideos(playlistID)
		if err != nil {
			return middleware.ErrorResponse(c, youtube.StatusCode(err), "Failed to fetch playlist from YouTube!", err)
		}

		lock := lockCourseImport(course.ID)
		outcome, err := importPlaylistVideos(db, &course, videos, false)
		lock.Unlock()
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to import playlist!", err)
		}

		course.PlaylistID = playlistID
		if err := db.Save(&course).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course!", err)
		}
		log.Printf("Course %q created with %d lectures from playlist %s", course.Title, len(outcome.Created), playlistID)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetAllCourses lists courses with search, filters, sorting and pagination.
// Unpublished courses are only included for admins asking for them.
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*struct {
		Search             string `query:"search"`
		Category           string `query:"category"`
		Level              string `query:"level"`
		SortBy             string `query:"sortBy"`
		Page               int    `query:"page"`
		Limit              int    `query:"limit"`
		IncludeUnpublished bool   `query:"includeUnpublished"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db

	query := db.Model(&models.Course{})

	if reqData.Search != "" {
		like := "%" + strings.ToLower(reqData.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if reqData.Category != "" && reqData.Category != "all" {
		query = query.Where("category = ?", reqData.Category)
	}
	if reqData.Level != "" && reqData.Level != "all" {
		query = query.Where("level = ?", reqData.Level)
	}

	isAdmin := false
	if user, ok := c.Locals("user").(models.User); ok && user.Role == models.RoleAdmin {
		isAdmin = true
	}
	if !reqData.IncludeUnpublished || !isAdmin {
		query = query.Where("is_published = ?", true)
	}

	switch reqData.SortBy {
	case "oldest":
		query = query.Order("created_at asc")
	case "title":
		query = query.Order("title asc")
	case "popular":
		query = query.Order("(SELECT COUNT(*) FROM enrollments WHERE enrollments.course_id = courses.id AND enrollments.deleted_at IS NULL) desc")
	default:
		query = query.Order("created_at desc")
	}

	var total int64
	query.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var courses []models.Course
	if err := query.Offset(offset).Limit(reqData.Limit).Preload("Lectures", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence asc")
	}).Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!", err)
	}

	var categories []string
	db.Model(&models.Course{}).Where("is_published = ?", true).Distinct().Pluck("category", &categories)
	var levels []string
	db.Model(&models.Course{}).Where("is_published = ?", true).Distinct().Pluck("level", &levels)

	totalPages := int((total + int64(reqData.Limit) - 1) / int64(reqData.Limit))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"current_page":  reqData.Page,
			"total_pages":   totalPages,
			"total_courses": total,
			"has_next_page": reqData.Page < totalPages,
			"has_prev_page": reqData.Page > 1,
		},
		"filters": fiber.Map{
			"categories": categories,
			"levels":     levels,
		},
	})
}

// GetCourseByID returns one course with its lectures in sequence order.
func GetCourseByID(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Preload("Lectures", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence asc")
	}).First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course": course,
	})
}

// UpdateCourse updates course fields that were provided.
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       string `json:"courseTitle"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Level       string `json:"level"`
		PlaylistID  string `json:"playlistId"`
		IsPublished *bool  `json:"isPublished"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.PlaylistID != "" {
		course.PlaylistID = reqData.PlaylistID
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// TogglePublishCourse sets or flips the published flag.
func TogglePublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData := new(struct {
		IsPublished *bool `json:"isPublished"`
	})
	// Body is optional; an empty body means toggle
	_ = c.BodyParser(reqData)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	} else {
		course.IsPublished = !course.IsPublished
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course status!", err)
	}

	message := "Course unpublished successfully!"
	if course.IsPublished {
		message = "Course published successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"id":           course.ID,
		"title":        course.Title,
		"is_published": course.IsPublished,
	})
}

// DeleteCourse hard-deletes a course and all its lectures and progress
// rows, reporting how many lectures went with it. Stale enrollments are
// swept by the cleanup pass.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	deletedLectures, err := deleteCourseCascade(db, &course)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete course!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course and associated lectures deleted successfully!", fiber.Map{
		"id":                     course.ID,
		"title":                  course.Title,
		"deleted_lectures_count": deletedLectures,
	})
}

// deleteCourseCascade removes the course, its lectures and all related
// progress rows in one transaction and returns the lecture count.
func deleteCourseCascade(db *gorm.DB, course *models.Course) (int64, error) {
	var deleted int64

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&models.Lecture{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected

		if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&models.LectureProgress{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&models.Course{}, course.ID).Error
	})

	return deleted, err
}
