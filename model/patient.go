package model

import "gorm.io/gorm"

// Allowed values for the patient gender field.
var PatientGenders = []string{"M", "F", "O"}

type Patient struct {
	gorm.Model
	FullName    string `json:"full_name" gorm:"not null"`
	Age         int    `json:"age"`
	Gender      string `json:"gender" gorm:"size:1"`
	PhoneNumber string `json:"phone_number" gorm:"uniqueIndex;size:32"`
	Address     string `json:"address"`
}

// Validate checks the closed-set and numeric fields before the row is
// submitted to the database.
func (p *Patient) Validate() error {
	if p.FullName == "" {
		return &ValidationError{Field: "full_name", Value: "", Allowed: "non-empty"}
	}
	if p.Age < 0 {
		return &ValidationError{Field: "age", Value: p.Age, Allowed: ">= 0"}
	}
	if !containsString(p.Gender, PatientGenders) {
		return &ValidationError{Field: "gender", Value: p.Gender, Allowed: "M, F, O"}
	}
	return nil
}
