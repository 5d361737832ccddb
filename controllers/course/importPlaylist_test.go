package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harshrjgithub/YouTube-LMS/config"
	"github.com/harshrjgithub/YouTube-LMS/database"
	"github.com/harshrjgithub/YouTube-LMS/models"
	courseValidator "github.com/harshrjgithub/YouTube-LMS/validators/course"
	"github.com/harshrjgithub/YouTube-LMS/youtube"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func playlistVideos(count int) []youtube.Video {
	videos := make([]youtube.Video, 0, count)
	for i := 1; i <= count; i++ {
		videoID := fmt.Sprintf("imported-%02d", i)
		videos = append(videos, youtube.Video{
			Title:    fmt.Sprintf("Imported Video %d", i),
			VideoID:  videoID,
			URL:      youtube.WatchURL(videoID),
			Sequence: i,
		})
	}
	return videos
}

func TestImportPlaylistVideosAppend(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 2)

	outcome, err := importPlaylistVideos(db, course, playlistVideos(3), false)
	require.NoError(t, err)

	assert.Len(t, outcome.Created, 3)
	assert.Equal(t, 0, outcome.Skipped)
	assert.Empty(t, outcome.Errors)

	// New lectures continue the numbering after the existing ones
	assert.Equal(t, 3, outcome.Created[0].Sequence)
	assert.Equal(t, 4, outcome.Created[1].Sequence)
	assert.Equal(t, 5, outcome.Created[2].Sequence)

	var total int64
	require.NoError(t, db.Model(&models.Lecture{}).Where("course_id = ?", course.ID).Count(&total).Error)
	assert.Equal(t, int64(5), total)
}

func TestImportPlaylistVideosSkipsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	videos := playlistVideos(3)
	first, err := importPlaylistVideos(db, course, videos, false)
	require.NoError(t, err)
	require.Len(t, first.Created, 3)

	// Re-importing the same playlist adds nothing
	second, err := importPlaylistVideos(db, course, videos, false)
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	assert.Equal(t, 3, second.Skipped)

	var total int64
	require.NoError(t, db.Model(&models.Lecture{}).Where("course_id = ?", course.ID).Count(&total).Error)
	assert.Equal(t, int64(3), total)
}

func TestImportPlaylistVideosPartialDuplicates(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	_, err := importPlaylistVideos(db, course, playlistVideos(2), false)
	require.NoError(t, err)

	outcome, err := importPlaylistVideos(db, course, playlistVideos(4), false)
	require.NoError(t, err)

	assert.Len(t, outcome.Created, 2)
	assert.Equal(t, 2, outcome.Skipped)
	assert.Equal(t, 3, outcome.Created[0].Sequence)
	assert.Equal(t, 4, outcome.Created[1].Sequence)
}

func TestImportPlaylistVideosReplace(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 4)

	outcome, err := importPlaylistVideos(db, course, playlistVideos(2), true)
	require.NoError(t, err)

	assert.Len(t, outcome.Created, 2)
	assert.Equal(t, 0, outcome.Skipped)

	var lectures []models.Lecture
	require.NoError(t, db.Where("course_id = ?", course.ID).Order("sequence").Find(&lectures).Error)
	require.Len(t, lectures, 2)

	// Replacement renumbers from 1 regardless of what was there before
	assert.Equal(t, 1, lectures[0].Sequence)
	assert.Equal(t, 2, lectures[1].Sequence)
	assert.Equal(t, "imported-01", lectures[0].YouTubeVideoID)
	assert.Equal(t, "imported-02", lectures[1].YouTubeVideoID)
}

// fakeYouTubeAPI serves a single playlist page in the Data API shape.
func fakeYouTubeAPI(t *testing.T, videoIDs ...string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/playlistItems", r.URL.Path)

		items := make([]map[string]interface{}, 0, len(videoIDs))
		for _, id := range videoIDs {
			items = append(items, map[string]interface{}{
				"snippet": map[string]interface{}{
					"title":       "Video " + id,
					"description": "About " + id,
					"resourceId":  map[string]interface{}{"videoId": id},
				},
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"items": items})
	}))
}

func importApp(db *gorm.DB, apiBase string) *fiber.App {
	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		Env:            "test",
		YouTubeAPIKey:  "test-key",
		YouTubeAPIBase: apiBase,
	}

	app := fiber.New()
	app.Post("/courses/:courseId/lectures/import-playlist",
		courseValidator.CourseIDParam("courseId"),
		courseValidator.ImportPlaylist(),
		ImportPlaylistLectures)
	return app
}

func TestImportPlaylistEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	server := fakeYouTubeAPI(t, "dQw4w9WgXcQ", "oHg5SJYRHA0")
	defer server.Close()

	app := importApp(db, server.URL)

	raw, err := json.Marshal(fiber.Map{"playlistId": "PLtestImport"})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/courses/1/lectures/import-playlist", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["imported_count"])
	assert.Equal(t, float64(2), data["total_videos_in_playlist"])
	assert.NotEmpty(t, data["import_id"])

	// The playlist is remembered on the course
	var saved models.Course
	require.NoError(t, db.First(&saved, course.ID).Error)
	assert.Equal(t, "PLtestImport", saved.PlaylistID)

	var lectures []models.Lecture
	require.NoError(t, db.Where("course_id = ?", course.ID).Order("sequence").Find(&lectures).Error)
	require.Len(t, lectures, 2)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", lectures[0].VideoURL)
}

func TestImportPlaylistNoAPIKey(t *testing.T) {
	db := setupTestDB(t)
	createTestCourse(t, db, 0)

	app := importApp(db, "http://localhost:1")
	config.AppConfig.YouTubeAPIKey = ""

	raw, err := json.Marshal(fiber.Map{"playlistId": "PLtestImport"})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/courses/1/lectures/import-playlist", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestImportPlaylistUpstreamForbidden(t *testing.T) {
	db := setupTestDB(t)
	createTestCourse(t, db, 0)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	app := importApp(db, server.URL)

	raw, err := json.Marshal(fiber.Map{"playlistId": "PLtestImport"})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/courses/1/lectures/import-playlist", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestImportPlaylistEmpty(t *testing.T) {
	db := setupTestDB(t)
	createTestCourse(t, db, 0)

	server := fakeYouTubeAPI(t)
	defer server.Close()

	app := importApp(db, server.URL)

	raw, err := json.Marshal(fiber.Map{"playlistId": "PLtestImport"})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/courses/1/lectures/import-playlist", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRecordImportPersistsAuditRow(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, 0)

	outcome, err := importPlaylistVideos(db, course, playlistVideos(2), false)
	require.NoError(t, err)

	recordImport(db, "import-test-id", course.ID, "PLtest", false, 2, outcome)

	var record models.PlaylistImport
	require.NoError(t, db.Where("import_id = ?", "import-test-id").First(&record).Error)
	assert.Equal(t, course.ID, record.CourseID)
	assert.Equal(t, 2, record.ImportedCount)
	assert.Equal(t, 0, record.SkippedCount)
	assert.Equal(t, 2, record.TotalVideos)
}
