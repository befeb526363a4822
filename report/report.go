// Package report exposes the canned hospital reports as typed functions over
// a gorm connection. Every function issues a single parameterized statement,
// maps the rows into the shapes defined in model, and holds no state between
// calls, so repeated invocations over unchanged data return identical output.
package report

import (
	"github.com/ariebrainware/basis-data-rs/model"
	"gorm.io/gorm"
)

// DefaultLowStockThreshold is the stock level under which a medicine is
// considered low when the caller does not supply one.
const DefaultLowStockThreshold = 60

// AppointmentsWithStatus lists every appointment with the patient and doctor
// names resolved.
func AppointmentsWithStatus(db *gorm.DB) ([]model.AppointmentStatusRow, error) {
	var rows []model.AppointmentStatusRow
	err := db.Table("appointments").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Select("patients.full_name AS patient_name, doctors.full_name AS doctor_name, appointments.appointment_date, appointments.status").
		Where("appointments.deleted_at IS NULL AND patients.deleted_at IS NULL AND doctors.deleted_at IS NULL").
		Order("appointments.appointment_date ASC, appointments.id ASC").
		Find(&rows).Error
	return rows, err
}

// UnpaidBills lists outstanding bills with the patient name resolved.
func UnpaidBills(db *gorm.DB) ([]model.UnpaidBillRow, error) {
	var rows []model.UnpaidBillRow
	err := db.Table("bills").
		Joins("JOIN patients ON patients.id = bills.patient_id").
		Select("bills.id AS bill_id, patients.full_name AS patient_name, bills.amount, bills.bill_date").
		Where("bills.status = ? AND bills.deleted_at IS NULL AND patients.deleted_at IS NULL", model.BillUnpaid).
		Order("bills.id ASC").
		Find(&rows).Error
	return rows, err
}

// TotalRevenue sums the amounts of all paid bills. It returns 0, not an
// error, when no paid bill exists.
func TotalRevenue(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Table("bills").
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ? AND deleted_at IS NULL", model.BillPaid).
		Scan(&total).Error
	return total, err
}

// TopDoctorsByAppointments ranks doctors by appointment count, descending,
// ties broken on doctor id ascending, capped at limit. Fewer rows than the
// limit is not an error.
func TopDoctorsByAppointments(db *gorm.DB, limit int) ([]model.DoctorAppointmentCountRow, error) {
	if limit <= 0 {
		return nil, &model.ValidationError{Field: "limit", Value: limit, Allowed: "> 0"}
	}
	var rows []model.DoctorAppointmentCountRow
	err := db.Table("appointments").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Select("doctors.full_name AS doctor_name, COUNT(appointments.id) AS total_appointments").
		Where("appointments.deleted_at IS NULL AND doctors.deleted_at IS NULL").
		Group("doctors.id, doctors.full_name").
		Order("total_appointments DESC, doctors.id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// LowStockMedicines lists medicines whose stock fell under the threshold.
func LowStockMedicines(db *gorm.DB, threshold int) ([]model.LowStockMedicineRow, error) {
	if threshold < 0 {
		return nil, &model.ValidationError{Field: "threshold", Value: threshold, Allowed: ">= 0"}
	}
	var rows []model.LowStockMedicineRow
	err := db.Table("medicines").
		Select("medicines.name AS medicine_name, medicines.stock").
		Where("medicines.stock < ? AND medicines.deleted_at IS NULL", threshold).
		Order("medicines.stock ASC").
		Find(&rows).Error
	return rows, err
}

// PrescriptionsForPatient lists prescribed medicines for the patient with
// the given name. Matching is exact; case sensitivity follows the store's
// collation.
func PrescriptionsForPatient(db *gorm.DB, name string) ([]model.PatientPrescriptionRow, error) {
	if name == "" {
		return nil, &model.ValidationError{Field: "name", Value: "", Allowed: "non-empty"}
	}
	var rows []model.PatientPrescriptionRow
	err := db.Table("prescriptions").
		Joins("JOIN appointments ON appointments.id = prescriptions.appointment_id").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Joins("JOIN medicines ON medicines.id = prescriptions.medicine_id").
		Select("patients.full_name AS patient_name, medicines.name AS medicine_name, prescriptions.dosage, prescriptions.duration").
		Where("patients.full_name = ? AND prescriptions.deleted_at IS NULL AND appointments.deleted_at IS NULL AND patients.deleted_at IS NULL AND medicines.deleted_at IS NULL", name).
		Order("prescriptions.id ASC").
		Find(&rows).Error
	return rows, err
}

// StaffCountByDepartment counts staff per department. Departments without
// staff are still listed with a count of 0.
func StaffCountByDepartment(db *gorm.DB) ([]model.DepartmentStaffCountRow, error) {
	var rows []model.DepartmentStaffCountRow
	err := db.Table("departments").
		Joins("LEFT JOIN staffs ON staffs.department_id = departments.id AND staffs.deleted_at IS NULL").
		Select("departments.name AS department_name, COUNT(staffs.id) AS staff_count").
		Where("departments.deleted_at IS NULL").
		Group("departments.id, departments.name").
		Order("departments.id ASC").
		Find(&rows).Error
	return rows, err
}

// PatientsWithMultipleAppointments lists patients holding more than one
// appointment.
func PatientsWithMultipleAppointments(db *gorm.DB) ([]model.PatientAppointmentCountRow, error) {
	var rows []model.PatientAppointmentCountRow
	err := db.Table("appointments").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Select("patients.full_name AS patient_name, COUNT(appointments.id) AS total_appointments").
		Where("appointments.deleted_at IS NULL AND patients.deleted_at IS NULL").
		Group("patients.id, patients.full_name").
		Having("COUNT(appointments.id) > 1").
		Order("total_appointments DESC, patients.id ASC").
		Find(&rows).Error
	return rows, err
}

// PaidBillsAboveAmount lists settled bills whose amount exceeds the threshold.
func PaidBillsAboveAmount(db *gorm.DB, threshold float64) ([]model.PaidBillRow, error) {
	if threshold < 0 {
		return nil, &model.ValidationError{Field: "threshold", Value: threshold, Allowed: ">= 0"}
	}
	var rows []model.PaidBillRow
	err := db.Table("bills").
		Joins("JOIN patients ON patients.id = bills.patient_id").
		Select("patients.full_name AS patient_name, bills.amount").
		Where("bills.status = ? AND bills.amount > ? AND bills.deleted_at IS NULL AND patients.deleted_at IS NULL", model.BillPaid, threshold).
		Order("bills.amount DESC").
		Find(&rows).Error
	return rows, err
}

// DepartmentRevenue sums paid bills per department, attributed through
// patient, appointment and doctor. A patient holding appointments in several
// departments has their bill summed once per department the join reaches;
// callers that need a bill counted exactly once must attribute it to a single
// appointment instead.
func DepartmentRevenue(db *gorm.DB) ([]model.DepartmentRevenueRow, error) {
	var rows []model.DepartmentRevenueRow
	err := db.Table("bills").
		Joins("JOIN patients ON patients.id = bills.patient_id").
		Joins("JOIN appointments ON appointments.patient_id = patients.id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Joins("JOIN departments ON departments.id = doctors.department_id").
		Select("departments.name AS department_name, SUM(bills.amount) AS department_revenue").
		Where("bills.status = ? AND bills.deleted_at IS NULL AND patients.deleted_at IS NULL AND appointments.deleted_at IS NULL AND doctors.deleted_at IS NULL AND departments.deleted_at IS NULL", model.BillPaid).
		Group("departments.id, departments.name").
		Order("department_revenue DESC").
		Find(&rows).Error
	return rows, err
}
