package model

// Row shapes returned by the report queries. Column aliases in the SELECT
// clauses must match the gorm column tags here.

// AppointmentStatusRow lists an appointment with both party names resolved.
type AppointmentStatusRow struct {
	PatientName     string `json:"patient_name" gorm:"column:patient_name"`
	DoctorName      string `json:"doctor_name" gorm:"column:doctor_name"`
	AppointmentDate string `json:"appointment_date" gorm:"column:appointment_date"`
	Status          string `json:"status" gorm:"column:status"`
}

// UnpaidBillRow is one outstanding bill with the patient name resolved.
type UnpaidBillRow struct {
	BillID      uint    `json:"bill_id" gorm:"column:bill_id"`
	PatientName string  `json:"patient_name" gorm:"column:patient_name"`
	Amount      float64 `json:"amount" gorm:"column:amount"`
	BillDate    string  `json:"bill_date" gorm:"column:bill_date"`
}

// DoctorAppointmentCountRow ranks a doctor by appointment volume.
type DoctorAppointmentCountRow struct {
	DoctorName        string `json:"doctor_name" gorm:"column:doctor_name"`
	TotalAppointments int    `json:"total_appointments" gorm:"column:total_appointments"`
}

// LowStockMedicineRow is a medicine whose stock fell under the threshold.
type LowStockMedicineRow struct {
	MedicineName string `json:"medicine_name" gorm:"column:medicine_name"`
	Stock        int    `json:"stock" gorm:"column:stock"`
}

// PatientPrescriptionRow is one prescribed medicine for a patient.
type PatientPrescriptionRow struct {
	PatientName  string `json:"patient_name" gorm:"column:patient_name"`
	MedicineName string `json:"medicine_name" gorm:"column:medicine_name"`
	Dosage       string `json:"dosage" gorm:"column:dosage"`
	Duration     string `json:"duration" gorm:"column:duration"`
}

// DepartmentStaffCountRow counts staff per department, including empty ones.
type DepartmentStaffCountRow struct {
	DepartmentName string `json:"department_name" gorm:"column:department_name"`
	StaffCount     int    `json:"staff_count" gorm:"column:staff_count"`
}

// PatientAppointmentCountRow is a patient with more than one appointment.
type PatientAppointmentCountRow struct {
	PatientName       string `json:"patient_name" gorm:"column:patient_name"`
	TotalAppointments int    `json:"total_appointments" gorm:"column:total_appointments"`
}

// PaidBillRow is a settled bill above a requested amount.
type PaidBillRow struct {
	PatientName string  `json:"patient_name" gorm:"column:patient_name"`
	Amount      float64 `json:"amount" gorm:"column:amount"`
}

// DepartmentRevenueRow sums paid bills attributed to a department.
type DepartmentRevenueRow struct {
	DepartmentName    string  `json:"department_name" gorm:"column:department_name"`
	DepartmentRevenue float64 `json:"department_revenue" gorm:"column:department_revenue"`
}
