package database

import (
	"log"

	"github.com/harshrjgithub/YouTube-LMS/config"
	"github.com/harshrjgithub/YouTube-LMS/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Bootstrap runs the one-time startup pass. It must complete before the
// server accepts traffic and is safe to re-run on every boot.
func Bootstrap(db *gorm.DB) error {
	if err := PublishLegacyCourses(db); err != nil {
		return err
	}
	if err := SeedAdminUser(db); err != nil {
		return err
	}
	if err := CleanupDanglingEnrollments(db); err != nil {
		return err
	}
	return nil
}

// PublishLegacyCourses publishes courses created before the is_published
// flag existed so they stay visible.
func PublishLegacyCourses(db *gorm.DB) error {
	result := db.Model(&models.Course{}).
		Where("is_published = ?", false).
		Update("is_published", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Published %d legacy courses", result.RowsAffected)
	}
	return nil
}

// SeedAdminUser provisions the singleton admin account from configuration,
// creating it if missing and refreshing its credentials and role otherwise.
func SeedAdminUser(db *gorm.DB) error {
	cfg := config.AppConfig

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.SaltRound)
	if err != nil {
		return err
	}

	var admin models.User
	err = db.Where("email = ?", cfg.AdminEmail).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		admin = models.User{
			Name:     cfg.AdminName,
			Email:    cfg.AdminEmail,
			Password: string(hashed),
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("Admin user created: %s", cfg.AdminEmail)
		return nil
	}
	if err != nil {
		return err
	}

	admin.Name = cfg.AdminName
	admin.Password = string(hashed)
	admin.Role = models.RoleAdmin
	if err := db.Save(&admin).Error; err != nil {
		return err
	}
	log.Printf("Admin user refreshed: %s", cfg.AdminEmail)
	return nil
}

// CleanupDanglingEnrollments removes enrollments (and their progress rows)
// whose course no longer exists. Courses are hard-deleted, so references
// can go stale between boots.
func CleanupDanglingEnrollments(db *gorm.DB) error {
	var enrollments []models.Enrollment
	if err := db.Find(&enrollments).Error; err != nil {
		return err
	}

	removed := 0
	for _, enrollment := range enrollments {
		var count int64
		if err := db.Model(&models.Course{}).Where("id = ?", enrollment.CourseID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := db.Unscoped().
			Where("user_id = ? AND course_id = ?", enrollment.UserID, enrollment.CourseID).
			Delete(&models.LectureProgress{}).Error; err != nil {
			return err
		}
		if err := db.Unscoped().Delete(&models.Enrollment{}, enrollment.ID).Error; err != nil {
			return err
		}
		removed++
	}

	if removed > 0 {
		log.Printf("Enrollment cleanup: removed %d dangling enrollments", removed)
	}
	return nil
}
