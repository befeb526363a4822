package model

import "gorm.io/gorm"

// Staff represents a non-doctor hospital employee
// @Description Staff information
type Staff struct {
	gorm.Model
	FullName     string `json:"full_name" gorm:"column:full_name;not null" example:"Jane Roe"`
	Role         string `json:"role" gorm:"column:role" example:"Nurse"`
	PhoneNumber  string `json:"phone_number" gorm:"column:phone_number;uniqueIndex;size:32" example:"081234567890"`
	DepartmentID uint   `json:"department_id" gorm:"column:department_id"`
}

func (s *Staff) Validate() error {
	if s.FullName == "" {
		return &ValidationError{Field: "full_name", Value: "", Allowed: "non-empty"}
	}
	return nil
}
