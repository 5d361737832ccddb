package models

import (
	"gorm.io/gorm"
)

// User roles. Admin access is decided by the role attribute only; the
// admin account itself is provisioned at startup from configuration.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"unique;not null"`
	Password   string `json:"-" gorm:"not null"`
	Role       string `json:"role" gorm:"default:'student'"`
	Bio        string `json:"bio" gorm:"default:''"`
	SkillLevel string `json:"skill_level" gorm:"default:'beginner'"`
	PhotoURL   string `json:"photo_url" gorm:"default:''"`
}
