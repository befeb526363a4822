package model

import "gorm.io/gorm"

// Bill statuses; new rows default to Unpaid.
const (
	BillPaid   = "Paid"
	BillUnpaid = "Unpaid"
)

var BillStatuses = []string{BillPaid, BillUnpaid}

// Bill represents a bill issued to a patient
// @Description Bill information
type Bill struct {
	gorm.Model
	PatientID uint    `json:"patient_id" gorm:"not null"`
	Amount    float64 `json:"amount" gorm:"type:decimal(10,2);not null" example:"2000.00"`
	BillDate  string  `json:"bill_date" gorm:"not null" example:"2025-01-15"`
	Status    string  `json:"status" gorm:"default:Unpaid" example:"Unpaid"`
}

func (b *Bill) Validate() error {
	if b.PatientID == 0 {
		return &ValidationError{Field: "patient_id", Value: b.PatientID, Allowed: "existing patient id"}
	}
	if b.Amount < 0 {
		return &ValidationError{Field: "amount", Value: b.Amount, Allowed: ">= 0"}
	}
	if b.Status != "" && !containsString(b.Status, BillStatuses) {
		return &ValidationError{Field: "status", Value: b.Status, Allowed: "Paid, Unpaid"}
	}
	return nil
}
