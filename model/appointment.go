package model

import "gorm.io/gorm"

// Appointment statuses form a closed set; new rows default to Scheduled.
const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

var AppointmentStatuses = []string{AppointmentScheduled, AppointmentCompleted, AppointmentCancelled}

type Appointment struct {
	gorm.Model
	PatientID       uint   `json:"patient_id" gorm:"not null"`
	DoctorID        uint   `json:"doctor_id" gorm:"not null"`
	AppointmentDate string `json:"appointment_date" gorm:"not null"`
	Status          string `json:"status" gorm:"default:Scheduled"`
}

func (a *Appointment) Validate() error {
	if a.PatientID == 0 {
		return &ValidationError{Field: "patient_id", Value: a.PatientID, Allowed: "existing patient id"}
	}
	if a.DoctorID == 0 {
		return &ValidationError{Field: "doctor_id", Value: a.DoctorID, Allowed: "existing doctor id"}
	}
	if a.Status != "" && !containsString(a.Status, AppointmentStatuses) {
		return &ValidationError{Field: "status", Value: a.Status, Allowed: "Scheduled, Completed, Cancelled"}
	}
	return nil
}
