package model

import (
	"fmt"

	"gorm.io/gorm"
)

// SeedDemoData inserts the fixed demonstration rows: four departments, four
// doctors with one appointment each, four patients, their bills, the
// medicine stock, two prescriptions, and staff for every department except
// Pediatrics. Rows that already exist are skipped, so calling it twice is
// harmless. adminPasswordHash is stored on the seeded Admin account.
func SeedDemoData(db *gorm.DB, adminPasswordHash string) error {
	departments := []Department{
		{Name: "Cardiology"},
		{Name: "Neurology"},
		{Name: "Orthopedics"},
		{Name: "Pediatrics"},
	}
	deptID := map[string]uint{}
	for _, dept := range departments {
		var existing Department
		err := db.Where("name = ?", dept.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&dept).Error; err != nil {
				return fmt.Errorf("failed to seed department %s: %w", dept.Name, err)
			}
			deptID[dept.Name] = dept.ID
			continue
		}
		if err != nil {
			return err
		}
		deptID[existing.Name] = existing.ID
	}

	cardiology := deptID["Cardiology"]
	neurology := deptID["Neurology"]
	orthopedics := deptID["Orthopedics"]
	pediatrics := deptID["Pediatrics"]

	doctors := []Doctor{
		{FullName: "Dr. Anita Wijaya", Specialization: "Cardiologist", DepartmentID: &cardiology},
		{FullName: "Dr. Bayu Santoso", Specialization: "Neurologist", DepartmentID: &neurology},
		{FullName: "Dr. Citra Lestari", Specialization: "Orthopedic Surgeon", DepartmentID: &orthopedics},
		{FullName: "Dr. Dian Permata", Specialization: "Pediatrician", DepartmentID: &pediatrics},
	}
	doctorID := map[string]uint{}
	for _, doc := range doctors {
		var existing Doctor
		err := db.Where("full_name = ?", doc.FullName).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&doc).Error; err != nil {
				return fmt.Errorf("failed to seed doctor %s: %w", doc.FullName, err)
			}
			doctorID[doc.FullName] = doc.ID
			continue
		}
		if err != nil {
			return err
		}
		doctorID[existing.FullName] = existing.ID
	}

	patients := []Patient{
		{FullName: "Andi Saputra", Age: 34, Gender: "M", PhoneNumber: "081100000001", Address: "Jl. Merdeka 1, Jakarta"},
		{FullName: "Bunga Melati", Age: 28, Gender: "F", PhoneNumber: "081100000002", Address: "Jl. Sudirman 22, Bandung"},
		{FullName: "Candra Kirana", Age: 45, Gender: "O", PhoneNumber: "081100000003", Address: "Jl. Diponegoro 7, Surabaya"},
		{FullName: "Dewi Anggraini", Age: 52, Gender: "F", PhoneNumber: "081100000004", Address: "Jl. Gajah Mada 15, Medan"},
	}
	patientID := map[string]uint{}
	for _, p := range patients {
		var existing Patient
		err := db.Where("phone_number = ?", p.PhoneNumber).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&p).Error; err != nil {
				return fmt.Errorf("failed to seed patient %s: %w", p.FullName, err)
			}
			patientID[p.FullName] = p.ID
			continue
		}
		if err != nil {
			return err
		}
		patientID[existing.FullName] = existing.ID
	}

	appointments := []Appointment{
		{PatientID: patientID["Andi Saputra"], DoctorID: doctorID["Dr. Anita Wijaya"], AppointmentDate: "2025-02-03", Status: AppointmentCompleted},
		{PatientID: patientID["Bunga Melati"], DoctorID: doctorID["Dr. Bayu Santoso"], AppointmentDate: "2025-02-05", Status: AppointmentCompleted},
		{PatientID: patientID["Candra Kirana"], DoctorID: doctorID["Dr. Citra Lestari"], AppointmentDate: "2025-02-10", Status: AppointmentScheduled},
		{PatientID: patientID["Dewi Anggraini"], DoctorID: doctorID["Dr. Dian Permata"], AppointmentDate: "2025-02-12", Status: AppointmentCancelled},
	}
	appointmentIDs := make([]uint, 0, len(appointments))
	for _, appt := range appointments {
		var existing Appointment
		err := db.Where("patient_id = ? AND doctor_id = ? AND appointment_date = ?",
			appt.PatientID, appt.DoctorID, appt.AppointmentDate).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&appt).Error; err != nil {
				return fmt.Errorf("failed to seed appointment on %s: %w", appt.AppointmentDate, err)
			}
			appointmentIDs = append(appointmentIDs, appt.ID)
			continue
		}
		if err != nil {
			return err
		}
		appointmentIDs = append(appointmentIDs, existing.ID)
	}

	bills := []Bill{
		{PatientID: patientID["Andi Saputra"], Amount: 2000.00, BillDate: "2025-02-10", Status: BillPaid},
		{PatientID: patientID["Bunga Melati"], Amount: 1500.00, BillDate: "2025-02-12", Status: BillPaid},
		{PatientID: patientID["Candra Kirana"], Amount: 750.50, BillDate: "2025-02-15", Status: BillUnpaid},
		{PatientID: patientID["Dewi Anggraini"], Amount: 300.00, BillDate: "2025-02-18", Status: BillUnpaid},
	}
	for _, bill := range bills {
		var existing Bill
		err := db.Where("patient_id = ? AND amount = ? AND bill_date = ?",
			bill.PatientID, bill.Amount, bill.BillDate).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&bill).Error; err != nil {
				return fmt.Errorf("failed to seed bill for patient %d: %w", bill.PatientID, err)
			}
			continue
		}
		if err != nil {
			return err
		}
	}

	medicines := []Medicine{
		{Name: "Paracetamol", Type: "Tablet", Price: 12.50, Stock: 120},
		{Name: "Amoxicillin", Type: "Capsule", Price: 25.00, Stock: 85},
		{Name: "Cough Syrup", Type: "Syrup", Price: 18.00, Stock: 50},
		{Name: "Vitamin C", Type: "Tablet", Price: 8.00, Stock: 200},
	}
	medicineID := map[string]uint{}
	for _, med := range medicines {
		var existing Medicine
		err := db.Where("name = ?", med.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&med).Error; err != nil {
				return fmt.Errorf("failed to seed medicine %s: %w", med.Name, err)
			}
			medicineID[med.Name] = med.ID
			continue
		}
		if err != nil {
			return err
		}
		medicineID[existing.Name] = existing.ID
	}

	prescriptions := []Prescription{
		{AppointmentID: appointmentIDs[0], MedicineID: medicineID["Paracetamol"], Dosage: "500mg twice a day", Duration: "5 days"},
		{AppointmentID: appointmentIDs[1], MedicineID: medicineID["Cough Syrup"], Dosage: "10ml three times a day", Duration: "7 days"},
	}
	for _, presc := range prescriptions {
		var existing Prescription
		err := db.Where("appointment_id = ? AND medicine_id = ?",
			presc.AppointmentID, presc.MedicineID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&presc).Error; err != nil {
				return fmt.Errorf("failed to seed prescription: %w", err)
			}
			continue
		}
		if err != nil {
			return err
		}
	}

	// No staff row references Pediatrics on purpose, the staff count report
	// must still list it with a zero count.
	staff := []Staff{
		{FullName: "Eka Pratiwi", Role: "Nurse", PhoneNumber: "081200000001", DepartmentID: cardiology},
		{FullName: "Fajar Ramadhan", Role: "Nurse", PhoneNumber: "081200000002", DepartmentID: neurology},
		{FullName: "Gita Savitri", Role: "Receptionist", PhoneNumber: "081200000003", DepartmentID: orthopedics},
		{FullName: "Hendra Gunawan", Role: "Lab Technician", PhoneNumber: "081200000004", DepartmentID: cardiology},
		{FullName: "Indah Puspita", Role: "Administrator", PhoneNumber: "081200000005", DepartmentID: neurology},
	}
	for _, s := range staff {
		var existing Staff
		err := db.Where("phone_number = ?", s.PhoneNumber).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&s).Error; err != nil {
				return fmt.Errorf("failed to seed staff %s: %w", s.FullName, err)
			}
			continue
		}
		if err != nil {
			return err
		}
	}

	admin := User{FullName: "Administrator", Email: "admin@rumahsakit.example", Password: adminPasswordHash, Role: "Admin"}
	var existingUser User
	err := db.Where("email = ?", admin.Email).First(&existingUser).Error
	if err == gorm.ErrRecordNotFound {
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
	} else if err != nil {
		return err
	}

	return nil
}
