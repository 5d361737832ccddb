package controllers

import (
	"fmt"
	"testing"

	"github.com/harshrjgithub/YouTube-LMS/database"
	"github.com/harshrjgithub/YouTube-LMS/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	return db
}

func createTestCourse(t *testing.T, db *gorm.DB, lectureCount int) *models.Course {
	t.Helper()

	course := &models.Course{
		Title:       "Go Fundamentals",
		Description: "Learn Go from scratch",
		Category:    "Programming",
		Level:       models.LevelBeginner,
		IsPublished: true,
	}
	require.NoError(t, db.Create(course).Error)

	for i := 1; i <= lectureCount; i++ {
		lecture := models.Lecture{
			CourseID:       course.ID,
			Title:          fmt.Sprintf("Lecture %d", i),
			VideoURL:       fmt.Sprintf("https://www.youtube.com/watch?v=existing-%02d", i),
			YouTubeVideoID: fmt.Sprintf("existing-%02d", i),
			Sequence:       i,
		}
		require.NoError(t, db.Create(&lecture).Error)
	}

	return course
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Test Student",
		Email:    email,
		Password: "hashed-password",
		Role:     models.RoleStudent,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

func enrollTestUser(t *testing.T, db *gorm.DB, userID, courseID uint) *models.Enrollment {
	t.Helper()

	enrollment := &models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}
	require.NoError(t, db.Create(enrollment).Error)

	return enrollment
}
