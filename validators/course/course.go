package courseValidator

import (
	"strconv"
	"strings"

	"github.com/harshrjgithub/YouTube-LMS/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseIDParam validates the course ID path parameter and stores it in
// locals as int.
func CourseIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params(param))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func isValidLevel(level string) bool {
	switch level {
	case "beginner", "intermediate", "advanced":
		return true
	}
	return false
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"courseTitle"`
			Description string `json:"description"`
			Category    string `json:"category"`
			Level       string `json:"level"`
			PlaylistID  string `json:"playlistId"`
			IsPublished *bool  `json:"isPublished"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["courseTitle"] = "Course title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}
		if reqData.Level == "" {
			errors["level"] = "Level is required!"
		} else if !isValidLevel(reqData.Level) {
			errors["level"] = "Level must be beginner, intermediate or advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"courseTitle"`
			Description string `json:"description"`
			Category    string `json:"category"`
			Level       string `json:"level"`
			PlaylistID  string `json:"playlistId"`
			IsPublished *bool  `json:"isPublished"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Level != "" && !isValidLevel(reqData.Level) {
			errors["level"] = "Level must be beginner, intermediate or advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Search             string `query:"search"`
			Category           string `query:"category"`
			Level              string `query:"level"`
			SortBy             string `query:"sortBy"`
			Page               int    `query:"page"`
			Limit              int    `query:"limit"`
			IncludeUnpublished bool   `query:"includeUnpublished"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		// Set default pagination
		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 {
			reqData.Limit = 12
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}
