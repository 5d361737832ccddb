package models

import "gorm.io/gorm"

// Course levels (lowercase, matching the public API)
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course is a published or draft learning course. Lectures are ordered by
// their Sequence column. Enrolled students are not denormalized here; they
// are computed by querying Enrollment.
type Course struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Category    string    `json:"category" gorm:"index"`
	Level       string    `json:"level" gorm:"default:'beginner'"`
	CreatorID   *uint     `json:"creator_id" gorm:"index"`
	PlaylistID  string    `json:"playlist_id" gorm:"default:''"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	Lectures    []Lecture `json:"lectures,omitempty" gorm:"foreignKey:CourseID"`
}

// Lecture is a single video lecture within a course. Sequence is 1-based
// and assigned in course order; playlist imports renumber it.
type Lecture struct {
	gorm.Model
	CourseID       uint   `json:"course_id" gorm:"index;not null"`
	Title          string `json:"title" gorm:"not null"`
	Description    string `json:"description" gorm:"default:''"`
	VideoURL       string `json:"video_url"`
	YouTubeVideoID string `json:"youtube_video_id" gorm:"column:youtube_video_id;index"`
	Sequence       int    `json:"sequence" gorm:"default:0"`
	IsPreview      bool   `json:"is_preview" gorm:"default:false"`
}
