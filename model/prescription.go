package model

import "gorm.io/gorm"

type Prescription struct {
	gorm.Model
	AppointmentID uint   `json:"appointment_id" gorm:"not null"`
	MedicineID    uint   `json:"medicine_id" gorm:"not null"`
	Dosage        string `json:"dosage" example:"500mg twice a day"`
	Duration      string `json:"duration" example:"5 days"`
}

func (p *Prescription) Validate() error {
	if p.AppointmentID == 0 {
		return &ValidationError{Field: "appointment_id", Value: p.AppointmentID, Allowed: "existing appointment id"}
	}
	if p.MedicineID == 0 {
		return &ValidationError{Field: "medicine_id", Value: p.MedicineID, Allowed: "existing medicine id"}
	}
	return nil
}
