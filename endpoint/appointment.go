package endpoint

import (
	"fmt"

	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ensurePatientExists(c *gin.Context, db *gorm.DB, id uint) bool {
	var patient model.Patient
	err := db.First(&patient, id).Error
	if err == gorm.ErrRecordNotFound {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Referenced patient does not exist",
			Err: fmt.Errorf("patient %d not found", id),
		})
		return false
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return false
	}
	return true
}

func ensureDoctorExists(c *gin.Context, db *gorm.DB, id uint) bool {
	var doctor model.Doctor
	err := db.First(&doctor, id).Error
	if err == gorm.ErrRecordNotFound {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Referenced doctor does not exist",
			Err: fmt.Errorf("doctor %d not found", id),
		})
		return false
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return false
	}
	return true
}

// ListAppointments godoc
// @Summary      List all appointments
// @Tags         Appointment
// @Produce      json
// @Param        limit query int false "Limit number of results" default(100)
// @Param        offset query int false "Offset for pagination" default(0)
// @Success      200 {object} util.APIResponse{data=[]model.Appointment} "Appointments retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointment [get]
func ListAppointments(c *gin.Context) {
	q := parseListQuery(c)
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var appointments []model.Appointment
	if err := db.Limit(q.Limit).Offset(q.Offset).Order("appointment_date ASC").Find(&appointments).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve appointments",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointments retrieved",
		Data: appointments,
	})
}

type createAppointmentRequest struct {
	PatientID       uint   `json:"patient_id" example:"1"`
	DoctorID        uint   `json:"doctor_id" example:"1"`
	AppointmentDate string `json:"appointment_date" example:"2025-02-03"`
	Status          string `json:"status,omitempty" example:"Scheduled"`
}

// CreateAppointment godoc
// @Summary      Create an appointment
// @Description  Book an appointment; status defaults to Scheduled when omitted
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createAppointmentRequest true "Appointment data"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment created"
// @Failure      400 {object} util.APIResponse "Validation or constraint error"
// @Router       /appointment [post]
func CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if !bindJSONOrRespond(c, &req, "Invalid input data") {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	appointment := model.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Status:          req.Status,
	}
	if appointment.Status == "" {
		appointment.Status = model.AppointmentScheduled
	}
	if err := appointment.Validate(); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid appointment data", Err: err})
		return
	}
	if appointment.AppointmentDate == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Missing appointment date",
			Err: fmt.Errorf("appointment_date is required"),
		})
		return
	}
	if !ensurePatientExists(c, db, appointment.PatientID) {
		return
	}
	if !ensureDoctorExists(c, db, appointment.DoctorID) {
		return
	}

	if err := db.Create(&appointment).Error; err != nil {
		respondCreateError(c, "appointment", err)
		return
	}

	util.LogEntityCreated("appointment", appointment.ID, c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment created",
		Data: appointment,
	})
}

// GetAppointment godoc
// @Summary      Get an appointment by ID
// @Tags         Appointment
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment retrieved"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Router       /appointment/{id} [get]
func GetAppointment(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var appointment model.Appointment
	err := db.First(&appointment, id).Error
	respondLookup(c, "appointment", appointment, err)
}
