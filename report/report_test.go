package report

import (
	"testing"

	"github.com/ariebrainware/basis-data-rs/config"
	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var reportTestModels = []interface{}{
	&model.Patient{},
	&model.Department{},
	&model.Doctor{},
	&model.Appointment{},
	&model.Bill{},
	&model.Medicine{},
	&model.Prescription{},
	&model.Staff{},
	&model.User{},
}

// setupReportTestDB connects to the in-memory test database, migrates the
// domain models and loads the demo seed rows. Tables are dropped on cleanup
// so every test starts from the same fixed data.
func setupReportTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("APPENV", "test")

	db, err := config.ConnectMySQL()
	if err != nil {
		t.Fatalf("failed to connect test DB: %v", err)
	}
	if err := db.AutoMigrate(reportTestModels...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	for _, m := range reportTestModels {
		db.Unscoped().Where("1 = 1").Delete(m)
	}
	if err := model.SeedDemoData(db, "irrelevant-hash"); err != nil {
		t.Fatalf("seed demo data failed: %v", err)
	}

	t.Cleanup(func() {
		for _, m := range reportTestModels {
			_ = db.Migrator().DropTable(m)
		}
	})

	return db
}

func TestAppointmentsWithStatus(t *testing.T) {
	db := setupReportTestDB(t)

	rows, err := AppointmentsWithStatus(db)
	assert.NoError(t, err)
	assert.Len(t, rows, 4)

	// Ordered by date; the first seeded appointment is Andi with Dr. Anita.
	assert.Equal(t, "Andi Saputra", rows[0].PatientName)
	assert.Equal(t, "Dr. Anita Wijaya", rows[0].DoctorName)
	assert.Equal(t, "2025-02-03", rows[0].AppointmentDate)
	assert.Equal(t, model.AppointmentCompleted, rows[0].Status)
}

func TestUnpaidBills(t *testing.T) {
	db := setupReportTestDB(t)

	rows, err := UnpaidBills(db)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.NotZero(t, row.BillID)
		assert.NotEmpty(t, row.PatientName)
	}
	assert.Equal(t, "Candra Kirana", rows[0].PatientName)
	assert.InDelta(t, 750.50, rows[0].Amount, 0.001)
}

func TestTotalRevenue(t *testing.T) {
	db := setupReportTestDB(t)

	total, err := TotalRevenue(db)
	assert.NoError(t, err)
	assert.InDelta(t, 3500.00, total, 0.001)
}

func TestTotalRevenueEmptyTableReturnsZero(t *testing.T) {
	db := setupReportTestDB(t)
	db.Unscoped().Where("1 = 1").Delete(&model.Bill{})

	total, err := TotalRevenue(db)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestTopDoctorsByAppointments(t *testing.T) {
	db := setupReportTestDB(t)

	// Limit above the number of doctors: all four, tied at one appointment,
	// no padding.
	rows, err := TopDoctorsByAppointments(db, 10)
	assert.NoError(t, err)
	assert.Len(t, rows, 4)
	for _, row := range rows {
		assert.Equal(t, 1, row.TotalAppointments)
	}
	// Ties break on doctor id ascending, which follows seed order.
	assert.Equal(t, "Dr. Anita Wijaya", rows[0].DoctorName)

	// Limit below the number of doctors caps the result.
	rows, err = TopDoctorsByAppointments(db, 3)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestTopDoctorsRejectsNonPositiveLimit(t *testing.T) {
	db := setupReportTestDB(t)

	_, err := TopDoctorsByAppointments(db, 0)
	assert.Error(t, err)
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "limit", verr.Field)
}

func TestLowStockMedicines(t *testing.T) {
	db := setupReportTestDB(t)

	rows, err := LowStockMedicines(db, DefaultLowStockThreshold)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Cough Syrup", rows[0].MedicineName)
	assert.Equal(t, 50, rows[0].Stock)

	// Threshold at the exact stock value is exclusive.
	rows, err = LowStockMedicines(db, 50)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPrescriptionsForPatient(t *testing.T) {
	db := setupReportTestDB(t)

	rows, err := PrescriptionsForPatient(db, "Andi Saputra")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Paracetamol", rows[0].MedicineName)
	assert.Equal(t, "500mg twice a day", rows[0].Dosage)
	assert.Equal(t, "5 days", rows[0].Duration)

	// Unknown patient yields an empty sequence, not an error.
	rows, err = PrescriptionsForPatient(db, "Nobody Here")
	assert.NoError(t, err)
	assert.Empty(t, rows)

	_, err = PrescriptionsForPatient(db, "")
	assert.Error(t, err)
}

func TestStaffCountByDepartment(t *testing.T) {
	db := setupReportTestDB(t)

	rows, err := StaffCountByDepartment(db)
	assert.NoError(t, err)
	assert.Len(t, rows, 4)

	counts := map[string]int{}
	for _, row := range rows {
		counts[row.DepartmentName] = row.StaffCount
	}
	assert.Equal(t, 2, counts["Cardiology"])
	assert.Equal(t, 2, counts["Neurology"])
	assert.Equal(t, 1, counts["Orthopedics"])
	// Pediatrics has no staff but must still be listed.
	assert.Equal(t, 0, counts["Pediatrics"])
}

func TestPatientsWithMultipleAppointmentsEmptyOnSeed(t *testing.T) {
	db := setupReportTestDB(t)

	rows, err := PatientsWithMultipleAppointments(db)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPatientsWithMultipleAppointmentsAfterSecondBooking(t *testing.T) {
	db := setupReportTestDB(t)

	var patient model.Patient
	assert.NoError(t, db.Where("full_name = ?", "Andi Saputra").First(&patient).Error)
	var doctor model.Doctor
	assert.NoError(t, db.Where("full_name = ?", "Dr. Bayu Santoso").First(&doctor).Error)

	second := model.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: "2025-03-01",
		Status:          model.AppointmentScheduled,
	}
	assert.NoError(t, db.Create(&second).Error)

	rows, err := PatientsWithMultipleAppointments(db)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Andi Saputra", rows[0].PatientName)
	assert.Equal(t, 2, rows[0].TotalAppointments)
}

func TestPaidBillsAboveAmount(t *testing.T) {
	db := setupReportTestDB(t)

	rows, err := PaidBillsAboveAmount(db, 1600)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Andi Saputra", rows[0].PatientName)
	assert.InDelta(t, 2000.00, rows[0].Amount, 0.001)

	// The comparison is strict: a threshold equal to an amount excludes it.
	rows, err = PaidBillsAboveAmount(db, 2000)
	assert.NoError(t, err)
	assert.Empty(t, rows)

	_, err = PaidBillsAboveAmount(db, -1)
	assert.Error(t, err)
}

func TestDepartmentRevenue(t *testing.T) {
	db := setupReportTestDB(t)

	rows, err := DepartmentRevenue(db)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	revenue := map[string]float64{}
	for _, row := range rows {
		revenue[row.DepartmentName] = row.DepartmentRevenue
	}
	assert.InDelta(t, 2000.00, revenue["Cardiology"], 0.001)
	assert.InDelta(t, 1500.00, revenue["Neurology"], 0.001)
}

// A patient with appointments in two departments has their paid bill summed
// once per department the join reaches. The behavior is deliberate; this
// test pins it down so a change shows up as a failure.
func TestDepartmentRevenueJoinFanOut(t *testing.T) {
	db := setupReportTestDB(t)

	var patient model.Patient
	assert.NoError(t, db.Where("full_name = ?", "Andi Saputra").First(&patient).Error)
	var doctor model.Doctor
	assert.NoError(t, db.Where("full_name = ?", "Dr. Bayu Santoso").First(&doctor).Error)

	second := model.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: "2025-03-01",
		Status:          model.AppointmentScheduled,
	}
	assert.NoError(t, db.Create(&second).Error)

	rows, err := DepartmentRevenue(db)
	assert.NoError(t, err)

	revenue := map[string]float64{}
	for _, row := range rows {
		revenue[row.DepartmentName] = row.DepartmentRevenue
	}
	// Andi's 2000.00 bill now reaches Neurology as well, on top of Bunga's
	// 1500.00, while Cardiology still carries it through the first
	// appointment.
	assert.InDelta(t, 2000.00, revenue["Cardiology"], 0.001)
	assert.InDelta(t, 3500.00, revenue["Neurology"], 0.001)
}

func TestDepartmentRevenueExcludesRemovedDoctor(t *testing.T) {
	db := setupReportTestDB(t)

	// Removing Cardiology's only doctor must also remove its revenue.
	assert.NoError(t, db.Where("full_name = ?", "Dr. Anita Wijaya").Delete(&model.Doctor{}).Error)

	rows, err := DepartmentRevenue(db)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Neurology", rows[0].DepartmentName)
	assert.InDelta(t, 1500.00, rows[0].DepartmentRevenue, 0.001)
}

func TestDepartmentRevenueExcludesRemovedPatient(t *testing.T) {
	db := setupReportTestDB(t)

	assert.NoError(t, db.Where("full_name = ?", "Bunga Melati").Delete(&model.Patient{}).Error)

	rows, err := DepartmentRevenue(db)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Cardiology", rows[0].DepartmentName)
	assert.InDelta(t, 2000.00, rows[0].DepartmentRevenue, 0.001)
}

func TestPrescriptionsForPatientExcludesRemovedMedicine(t *testing.T) {
	db := setupReportTestDB(t)

	assert.NoError(t, db.Where("name = ?", "Paracetamol").Delete(&model.Medicine{}).Error)

	rows, err := PrescriptionsForPatient(db, "Andi Saputra")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPrescriptionsForPatientExcludesRemovedAppointment(t *testing.T) {
	db := setupReportTestDB(t)

	var patient model.Patient
	assert.NoError(t, db.Where("full_name = ?", "Bunga Melati").First(&patient).Error)
	assert.NoError(t, db.Where("patient_id = ?", patient.ID).Delete(&model.Appointment{}).Error)

	rows, err := PrescriptionsForPatient(db, "Bunga Melati")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReportsAreIdempotent(t *testing.T) {
	db := setupReportTestDB(t)

	first, err := AppointmentsWithStatus(db)
	assert.NoError(t, err)
	second, err := AppointmentsWithStatus(db)
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	total1, err := TotalRevenue(db)
	assert.NoError(t, err)
	total2, err := TotalRevenue(db)
	assert.NoError(t, err)
	assert.Equal(t, total1, total2)

	staff1, err := StaffCountByDepartment(db)
	assert.NoError(t, err)
	staff2, err := StaffCountByDepartment(db)
	assert.NoError(t, err)
	assert.Equal(t, staff1, staff2)
}

func TestReportsOnEmptyTables(t *testing.T) {
	db := setupReportTestDB(t)
	for _, m := range reportTestModels {
		db.Unscoped().Where("1 = 1").Delete(m)
	}

	appointments, err := AppointmentsWithStatus(db)
	assert.NoError(t, err)
	assert.Empty(t, appointments)

	bills, err := UnpaidBills(db)
	assert.NoError(t, err)
	assert.Empty(t, bills)

	doctors, err := TopDoctorsByAppointments(db, 5)
	assert.NoError(t, err)
	assert.Empty(t, doctors)

	staff, err := StaffCountByDepartment(db)
	assert.NoError(t, err)
	assert.Empty(t, staff)

	departments, err := DepartmentRevenue(db)
	assert.NoError(t, err)
	assert.Empty(t, departments)
}
