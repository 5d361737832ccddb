package controllers

import (
	"errors"

	"github.com/harshrjgithub/YouTube-LMS/config"
	"github.com/harshrjgithub/YouTube-LMS/database"
	"github.com/harshrjgithub/YouTube-LMS/middleware"
	"github.com/harshrjgithub/YouTube-LMS/models"
	"github.com/harshrjgithub/YouTube-LMS/youtube"

	"github.com/gofiber/fiber/v2"
)

// CreateLecture creates a single lecture from a video URL or bare video ID.
func CreateLecture(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedLecture").(*struct {
		Title       string `json:"lectureTitle"`
		Description string `json:"lectureDescription"`
		VideoURL    string `json:"videoUrl"`
		Sequence    int    `json:"sequence"`
		IsPreview   bool   `json:"isPreview"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	videoID, err := youtube.ExtractVideoID(reqData.VideoURL)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid YouTube URL. Please provide a valid YouTube video URL or video ID.", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Verify the video upstream when a credential is configured
	if config.AppConfig.YouTubeAPIKey != "" {
		client := youtube.NewClient(config.AppConfig.YouTubeAPIBase, config.AppConfig.YouTubeAPIKey)
		exists, err := client.VideoExists(videoID)
		if err != nil && !errors.Is(err, youtube.ErrAPIKeyMissing) {
			return middleware.ErrorResponse(c, youtube.StatusCode(err), "Failed to verify video with YouTube!", err)
		}
		if err == nil && !exists {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "YouTube video not found or unavailable.", nil)
		}
	}

	sequence := reqData.Sequence
	if sequence <= 0 {
		var count int64
		if err := db.Model(&models.Lecture{}).Where("course_id = ?", courseID).Count(&count).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create lecture!", err)
		}
		sequence = int(count) + 1
	}

	lecture := models.Lecture{
		CourseID:       course.ID,
		Title:          reqData.Title,
		Description:    reqData.Description,
		VideoURL:       youtube.WatchURL(videoID),
		YouTubeVideoID: videoID,
		Sequence:       sequence,
		IsPreview:      reqData.IsPreview,
	}

	if err := db.Create(&lecture).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create lecture!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lecture created successfully!", lecture)
}

// GetCourseLectures lists a course's lectures in sequence order.
func GetCourseLectures(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lectures []models.Lecture
	if err := db.Where("course_id = ?", courseID).Order("sequence asc").Find(&lectures).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch lectures!", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lectures fetched successfully!", fiber.Map{
		"lectures": lectures,
		"course": fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"category":    course.Category,
			"level":       course.Level,
		},
	})
}
