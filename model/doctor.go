package model

import "gorm.io/gorm"

// Doctor represents a doctor entity
// @Description Doctor information
type Doctor struct {
	gorm.Model
	FullName       string `json:"full_name" gorm:"column:full_name;not null" example:"Dr. John Smith"`
	Specialization string `json:"specialization" gorm:"column:specialization" example:"Cardiologist"`
	// DepartmentID is optional, a doctor may be unassigned.
	DepartmentID *uint `json:"department_id" gorm:"column:department_id"`
}

func (d *Doctor) Validate() error {
	if d.FullName == "" {
		return &ValidationError{Field: "full_name", Value: "", Allowed: "non-empty"}
	}
	return nil
}
