package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a user to a course. At most one row may exist per
// (user, course) pair. ProgressPercentage, CompletedLectures and
// TotalLectures are a read-optimization cache refreshed on every lecture
// completion; LectureProgress is the source of truth.
type Enrollment struct {
	gorm.Model
	UserID             uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID           uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	EnrolledAt         time.Time `json:"enrolled_at"`
	LastAccessedAt     time.Time `json:"last_accessed_at"`
	ProgressPercentage int       `json:"progress_percentage" gorm:"default:0"`
	CompletedLectures  int       `json:"completed_lectures" gorm:"default:0"`
	TotalLectures      int       `json:"total_lectures" gorm:"default:0"`
	Course             Course    `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
