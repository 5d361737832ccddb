package courseValidator

import (
	"strconv"
	"strings"

	"github.com/harshrjgithub/YouTube-LMS/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateLecture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"lectureTitle"`
			Description string `json:"lectureDescription"`
			VideoURL    string `json:"videoUrl"`
			Sequence    int    `json:"sequence"`
			IsPreview   bool   `json:"isPreview"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["lectureTitle"] = "Lecture title is required!"
		}
		if strings.TrimSpace(reqData.VideoURL) == "" {
			errors["videoUrl"] = "Video URL is required!"
		}
		if reqData.Sequence < 0 {
			errors["sequence"] = "Sequence must be positive!"
		}

		// Missing title/URL is a plain bad request on this endpoint
		if len(errors) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
		}

		c.Locals("validatedLecture", reqData)
		return c.Next()
	}
}

func ImportPlaylist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PlaylistID      string `json:"playlistId"`
			ReplaceExisting bool   `json:"replaceExisting"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.PlaylistID) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Playlist ID is required!", nil)
		}

		c.Locals("validatedPlaylistImport", reqData)
		return c.Next()
	}
}

// LectureIDParams validates both the course and lecture ID path parameters.
func LectureIDParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(strings.TrimSpace(c.Params("courseId")))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		lectureID, err := strconv.Atoi(strings.TrimSpace(c.Params("lectureId")))
		if err != nil || lectureID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lecture ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("lectureID", lectureID)
		return c.Next()
	}
}
