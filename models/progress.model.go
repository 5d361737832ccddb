package models

import (
	"time"

	"gorm.io/gorm"
)

// LectureProgress records a user's progress on one lecture of one course.
// Unique per (user, course, lecture) triple. A lecture moves from not
// started straight to completed; there is no partial state, and no way
// back. WatchTime and Attempts are tracked for future use and do not gate
// completion.
type LectureProgress struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"uniqueIndex:idx_user_course_lecture;not null"`
	CourseID       uint       `json:"course_id" gorm:"uniqueIndex:idx_user_course_lecture;not null"`
	LectureID      uint       `json:"lecture_id" gorm:"uniqueIndex:idx_user_course_lecture;not null"`
	IsCompleted    bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt    *time.Time `json:"completed_at"`
	LastAccessedAt time.Time  `json:"last_accessed_at"`
	WatchTime      int        `json:"watch_time" gorm:"default:0"` // seconds
	Attempts       int        `json:"attempts" gorm:"default:1"`
}

// CourseProgress is the aggregate computed from LectureProgress rows.
type CourseProgress struct {
	TotalLectures      int `json:"total_lectures"`
	CompletedLectures  int `json:"completed_lectures"`
	ProgressPercentage int `json:"progress_percentage"`
}
