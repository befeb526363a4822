package endpoint

import (
	"fmt"

	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ensureAppointmentExists(c *gin.Context, db *gorm.DB, id uint) bool {
	var appointment model.Appointment
	err := db.First(&appointment, id).Error
	if err == gorm.ErrRecordNotFound {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Referenced appointment does not exist",
			Err: fmt.Errorf("appointment %d not found", id),
		})
		return false
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return false
	}
	return true
}

func ensureMedicineExists(c *gin.Context, db *gorm.DB, id uint) bool {
	var medicine model.Medicine
	err := db.First(&medicine, id).Error
	if err == gorm.ErrRecordNotFound {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Referenced medicine does not exist",
			Err: fmt.Errorf("medicine %d not found", id),
		})
		return false
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return false
	}
	return true
}

// ListPrescriptions godoc
// @Summary      List all prescriptions
// @Tags         Prescription
// @Produce      json
// @Param        limit query int false "Limit number of results" default(100)
// @Param        offset query int false "Offset for pagination" default(0)
// @Success      200 {object} util.APIResponse{data=[]model.Prescription} "Prescriptions retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /prescription [get]
func ListPrescriptions(c *gin.Context) {
	q := parseListQuery(c)
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var prescriptions []model.Prescription
	if err := db.Limit(q.Limit).Offset(q.Offset).Find(&prescriptions).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve prescriptions",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Prescriptions retrieved",
		Data: prescriptions,
	})
}

type createPrescriptionRequest struct {
	AppointmentID uint   `json:"appointment_id" example:"1"`
	MedicineID    uint   `json:"medicine_id" example:"1"`
	Dosage        string `json:"dosage" example:"500mg twice a day"`
	Duration      string `json:"duration" example:"5 days"`
}

// CreatePrescription godoc
// @Summary      Create a prescription
// @Description  Link a medicine to an appointment with dosage and duration
// @Tags         Prescription
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createPrescriptionRequest true "Prescription data"
// @Success      200 {object} util.APIResponse{data=model.Prescription} "Prescription created"
// @Failure      400 {object} util.APIResponse "Validation or constraint error"
// @Router       /prescription [post]
func CreatePrescription(c *gin.Context) {
	var req createPrescriptionRequest
	if !bindJSONOrRespond(c, &req, "Invalid input data") {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	prescription := model.Prescription{
		AppointmentID: req.AppointmentID,
		MedicineID:    req.MedicineID,
		Dosage:        req.Dosage,
		Duration:      req.Duration,
	}
	if err := prescription.Validate(); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid prescription data", Err: err})
		return
	}
	if !ensureAppointmentExists(c, db, prescription.AppointmentID) {
		return
	}
	if !ensureMedicineExists(c, db, prescription.MedicineID) {
		return
	}

	if err := db.Create(&prescription).Error; err != nil {
		respondCreateError(c, "prescription", err)
		return
	}

	util.LogEntityCreated("prescription", prescription.ID, c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Prescription created",
		Data: prescription,
	})
}

// GetPrescription godoc
// @Summary      Get a prescription by ID
// @Tags         Prescription
// @Produce      json
// @Param        id path int true "Prescription ID"
// @Success      200 {object} util.APIResponse{data=model.Prescription} "Prescription retrieved"
// @Failure      404 {object} util.APIResponse "Prescription not found"
// @Router       /prescription/{id} [get]
func GetPrescription(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var prescription model.Prescription
	err := db.First(&prescription, id).Error
	respondLookup(c, "prescription", prescription, err)
}
