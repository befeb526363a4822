package endpoint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/report"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
)

// respondReport writes the uniform report response, mapping parameter
// validation failures to 400 and everything else to 500.
func respondReport(c *gin.Context, msg string, data interface{}, err error) {
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			util.CallUserError(c, util.APIErrorParams{Msg: "Invalid report parameter", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to run report", Err: err})
		return
	}
	util.LogAuditEvent(util.AuditEvent{
		EventType: util.EventReportQuery,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   fmt.Sprintf("Report served: %s", c.Request.URL.Path),
	})
	util.CallSuccessOK(c, util.APISuccessParams{Msg: msg, Data: data})
}

// AppointmentStatusReport godoc
// @Summary      Appointments with patient and doctor names
// @Tags         Report
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.AppointmentStatusRow}
// @Router       /report/appointments [get]
func AppointmentStatusReport(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	rows, err := report.AppointmentsWithStatus(db)
	respondReport(c, "Appointment report generated", rows, err)
}

// UnpaidBillsReport godoc
// @Summary      Outstanding bills with patient names
// @Tags         Report
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.UnpaidBillRow}
// @Router       /report/unpaid-bills [get]
func UnpaidBillsReport(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	rows, err := report.UnpaidBills(db)
	respondReport(c, "Unpaid bills report generated", rows, err)
}

// TotalRevenueReport godoc
// @Summary      Sum of all paid bill amounts
// @Tags         Report
// @Produce      json
// @Success      200 {object} util.APIResponse{data=object}
// @Router       /report/revenue [get]
func TotalRevenueReport(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	total, err := report.TotalRevenue(db)
	respondReport(c, "Revenue report generated", map[string]interface{}{"total_revenue": total}, err)
}

// TopDoctorsReport godoc
// @Summary      Doctors ranked by appointment count
// @Tags         Report
// @Produce      json
// @Param        limit query int false "Maximum number of doctors returned" default(5)
// @Success      200 {object} util.APIResponse{data=[]model.DoctorAppointmentCountRow}
// @Failure      400 {object} util.APIResponse "Invalid limit"
// @Router       /report/top-doctors [get]
func TopDoctorsReport(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil {
		limit = 0 // fails parameter validation below with a clear message
	}
	rows, rerr := report.TopDoctorsByAppointments(db, limit)
	respondReport(c, "Top doctors report generated", rows, rerr)
}

// LowStockReport godoc
// @Summary      Medicines under the stock threshold
// @Tags         Report
// @Produce      json
// @Param        threshold query int false "Stock threshold" default(60)
// @Success      200 {object} util.APIResponse{data=[]model.LowStockMedicineRow}
// @Router       /report/low-stock [get]
func LowStockReport(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	threshold, err := strconv.Atoi(c.DefaultQuery("threshold", strconv.Itoa(report.DefaultLowStockThreshold)))
	if err != nil {
		threshold = -1
	}
	rows, rerr := report.LowStockMedicines(db, threshold)
	respondReport(c, "Low stock report generated", rows, rerr)
}

// PatientPrescriptionsReport godoc
// @Summary      Prescribed medicines for a patient by exact name
// @Tags         Report
// @Produce      json
// @Param        name query string true "Patient full name"
// @Success      200 {object} util.APIResponse{data=[]model.PatientPrescriptionRow}
// @Failure      400 {object} util.APIResponse "Missing name"
// @Router       /report/prescriptions [get]
func PatientPrescriptionsReport(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	rows, err := report.PrescriptionsForPatient(db, c.Query("name"))
	respondReport(c, "Prescription report generated", rows, err)
}

// StaffCountReport godoc
// @Summary      Staff count per department, including empty departments
// @Tags         Report
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.DepartmentStaffCountRow}
// @Router       /report/staff-count [get]
func StaffCountReport(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	rows, err := report.StaffCountByDepartment(db)
	respondReport(c, "Staff count report generated", rows, err)
}

// FrequentPatientsReport godoc
// @Summary      Patients with more than one appointment
// @Tags         Report
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.PatientAppointmentCountRow}
// @Router       /report/frequent-patients [get]
func FrequentPatientsReport(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	rows, err := report.PatientsWithMultipleAppointments(db)
	respondReport(c, "Frequent patients report generated", rows, err)
}

// PaidBillsAboveReport godoc
// @Summary      Paid bills above an amount
// @Tags         Report
// @Produce      json
// @Param        threshold query number false "Minimum amount (exclusive)" default(0)
// @Success      200 {object} util.APIResponse{data=[]model.PaidBillRow}
// @Router       /report/paid-bills [get]
func PaidBillsAboveReport(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	threshold, err := strconv.ParseFloat(c.DefaultQuery("threshold", "0"), 64)
	if err != nil {
		threshold = -1
	}
	rows, rerr := report.PaidBillsAboveAmount(db, threshold)
	respondReport(c, "Paid bills report generated", rows, rerr)
}

// DepartmentRevenueReport godoc
// @Summary      Paid bill totals attributed per department
// @Tags         Report
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.DepartmentRevenueRow}
// @Router       /report/department-revenue [get]
func DepartmentRevenueReport(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	rows, err := report.DepartmentRevenue(db)
	respondReport(c, "Department revenue report generated", rows, err)
}
