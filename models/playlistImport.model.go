package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlaylistImport is an audit record of one playlist import run against a
// course. Errors holds the per-item failures as JSON.
type PlaylistImport struct {
	gorm.Model
	ImportID        string         `json:"import_id" gorm:"index"`
	CourseID        uint           `json:"course_id" gorm:"index;not null"`
	PlaylistID      string         `json:"playlist_id"`
	ReplaceExisting bool           `json:"replace_existing"`
	ImportedCount   int            `json:"imported_count"`
	SkippedCount    int            `json:"skipped_count"`
	ErrorCount      int            `json:"error_count"`
	TotalVideos     int            `json:"total_videos"`
	Errors          datatypes.JSON `json:"errors,omitempty"`
}
