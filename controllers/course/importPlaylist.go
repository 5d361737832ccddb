package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/harshrjgithub/YouTube-LMS/config"
	"github.com/harshrjgithub/YouTube-LMS/database"
	"github.com/harshrjgithub/YouTube-LMS/middleware"
	"github.com/harshrjgithub/YouTube-LMS/models"
	"github.com/harshrjgithub/YouTube-LMS/youtube"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImportItemError captures one failed playlist item.
type ImportItemError struct {
	VideoIndex int    `json:"video_index"`
	Title      string `json:"title"`
	Error      string `json:"error"`
}

// ImportOutcome summarizes one import run.
type ImportOutcome struct {
	Created []models.Lecture
	Skipped int
	Errors  []ImportItemError
}

// importLocks serializes playlist imports per course so concurrent imports
// cannot interleave sequence numbers. Imports for different courses run
// concurrently. Entries are never pruned: a waiter may still hold a
// reference to its mutex, and the map is bounded by the number of distinct
// courses ever imported into.
var importLocks = struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}{locks: make(map[uint]*sync.Mutex)}

func lockCourseImport(courseID uint) *sync.Mutex {
	importLocks.mu.Lock()
	lock, ok := importLocks.locks[courseID]
	if !ok {
		lock = &sync.Mutex{}
		importLocks.locks[courseID] = lock
	}
	importLocks.mu.Unlock()

	lock.Lock()
	return lock
}

// ImportPlaylistLectures imports every video of a YouTube playlist into a
// course as lectures.
func ImportPlaylistLectures(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedPlaylistImport").(*struct {
		PlaylistID      string `json:"playlistId"`
		ReplaceExisting bool   `json:"replaceExisting"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	playlistID, err := youtube.ExtractPlaylistID(reqData.PlaylistID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid playlist ID format!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if config.AppConfig.YouTubeAPIKey == "" {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "YouTube API key not configured!", youtube.ErrAPIKeyMissing)
	}

	importID := uuid.NewString()
	log.Printf("[import %s] Importing playlist %s into course %q", importID, playlistID, course.Title)

	client := youtube.NewClient(config.AppConfig.YouTubeAPIBase, config.AppConfig.YouTubeAPIKey)
	videos, err := client.PlaylistVideos(playlistID)
	if err != nil {
		if errors.Is(err, youtube.ErrRemoteUnavailable) {
			return middleware.ErrorResponse(c, youtube.StatusCode(err), "Failed to fetch playlist from YouTube!", err)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to import playlist!", err)
	}

	if len(videos) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No videos found in playlist or playlist is private/unavailable!", nil)
	}

	lock := lockCourseImport(course.ID)
	defer lock.Unlock()

	outcome, err := importPlaylistVideos(db, &course, videos, reqData.ReplaceExisting)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to import playlist!", err)
	}

	course.PlaylistID = playlistID
	if err := db.Save(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course!", err)
	}

	recordImport(db, importID, course.ID, playlistID, reqData.ReplaceExisting, len(videos), outcome)

	for _, itemErr := range outcome.Errors {
		log.Printf("[import %s] item %d (%s): %s", importID, itemErr.VideoIndex, itemErr.Title, itemErr.Error)
	}

	lectures := make([]fiber.Map, len(outcome.Created))
	for i, lecture := range outcome.Created {
		lectures[i] = fiber.Map{
			"id":               lecture.ID,
			"title":            lecture.Title,
			"youtube_video_id": lecture.YouTubeVideoID,
			"sequence":         lecture.Sequence,
		}
	}

	response := fiber.Map{
		"course_id":                course.ID,
		"course_title":             course.Title,
		"playlist_id":              playlistID,
		"import_id":                importID,
		"imported_count":           len(outcome.Created),
		"skipped_count":            outcome.Skipped,
		"error_count":              len(outcome.Errors),
		"total_videos_in_playlist": len(videos),
		"lectures":                 lectures,
	}
	if len(outcome.Errors) > 0 {
		response["errors"] = outcome.Errors
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Playlist imported successfully!", response)
}

// importPlaylistVideos creates lectures from playlist videos. With
// replaceExisting all current lectures are removed first and imported
// lectures are renumbered from 1; otherwise videos already present in the
// course are skipped and new ones appended after the current count.
// Per-item failures are collected and do not abort the rest of the batch.
func importPlaylistVideos(db *gorm.DB, course *models.Course, videos []youtube.Video, replaceExisting bool) (*ImportOutcome, error) {
	if replaceExisting {
		if err := db.Unscoped().Where("course_id = ?", course.ID).Delete(&models.Lecture{}).Error; err != nil {
			return nil, err
		}
	}

	existingIDs := make(map[string]bool)
	var existingCount int64
	if !replaceExisting {
		var existing []models.Lecture
		if err := db.Where("course_id = ?", course.ID).Find(&existing).Error; err != nil {
			return nil, err
		}
		for _, lecture := range existing {
			existingIDs[lecture.YouTubeVideoID] = true
		}
		existingCount = int64(len(existing))
	}

	outcome := &ImportOutcome{}
	nextSequence := int(existingCount) + 1

	for i, video := range videos {
		if !replaceExisting && existingIDs[video.VideoID] {
			outcome.Skipped++
			continue
		}

		lecture := models.Lecture{
			CourseID:       course.ID,
			Title:          video.Title,
			Description:    video.Description,
			VideoURL:       video.URL,
			YouTubeVideoID: video.VideoID,
			Sequence:       video.Sequence,
		}
		if !replaceExisting {
			lecture.Sequence = nextSequence
		}

		if err := db.Create(&lecture).Error; err != nil {
			outcome.Errors = append(outcome.Errors, ImportItemError{
				VideoIndex: i + 1,
				Title:      video.Title,
				Error:      err.Error(),
			})
			continue
		}

		outcome.Created = append(outcome.Created, lecture)
		nextSequence++
	}

	return outcome, nil
}

// recordImport persists the audit row for an import run. Failures here are
// logged, not surfaced; the import itself already succeeded.
func recordImport(db *gorm.DB, importID string, courseID uint, playlistID string, replace bool, total int, outcome *ImportOutcome) {
	record := models.PlaylistImport{
		ImportID:        importID,
		CourseID:        courseID,
		PlaylistID:      playlistID,
		ReplaceExisting: replace,
		ImportedCount:   len(outcome.Created),
		SkippedCount:    outcome.Skipped,
		ErrorCount:      len(outcome.Errors),
		TotalVideos:     total,
	}
	if len(outcome.Errors) > 0 {
		if raw, err := json.Marshal(outcome.Errors); err == nil {
			record.Errors = datatypes.JSON(raw)
		}
	}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("[import %s] failed to record import audit row: %v", importID, err)
	}
}
