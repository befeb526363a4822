package model

import "gorm.io/gorm"

// User is an API account used to authenticate write operations.
type User struct {
	gorm.Model
	FullName string `json:"full_name"`
	Email    string `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"default:User"`
}
