package model

import "gorm.io/gorm"

// Department represents a hospital department
// @Description Department information
type Department struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;size:191;not null" example:"Cardiology"`
}

func (d *Department) Validate() error {
	if d.Name == "" {
		return &ValidationError{Field: "name", Value: "", Allowed: "non-empty"}
	}
	return nil
}
