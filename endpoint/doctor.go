package endpoint

import (
	"fmt"

	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ensureDepartmentExists verifies the referenced department before an insert
// so the caller gets a clear message instead of a bare constraint error.
func ensureDepartmentExists(c *gin.Context, db *gorm.DB, id uint) bool {
	var department model.Department
	err := db.First(&department, id).Error
	if err == gorm.ErrRecordNotFound {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Referenced department does not exist",
			Err: fmt.Errorf("department %d not found", id),
		})
		return false
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return false
	}
	return true
}

// ListDoctors godoc
// @Summary      List all doctors
// @Tags         Doctor
// @Produce      json
// @Param        limit query int false "Limit number of results" default(100)
// @Param        offset query int false "Offset for pagination" default(0)
// @Success      200 {object} util.APIResponse{data=[]model.Doctor} "Doctors retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor [get]
func ListDoctors(c *gin.Context) {
	q := parseListQuery(c)
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var doctors []model.Doctor
	if err := db.Limit(q.Limit).Offset(q.Offset).Find(&doctors).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve doctors",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctors retrieved",
		Data: doctors,
	})
}

type createDoctorRequest struct {
	FullName       string `json:"full_name" example:"Dr. Anita Wijaya"`
	Specialization string `json:"specialization" example:"Cardiologist"`
	DepartmentID   *uint  `json:"department_id" example:"1"`
}

// CreateDoctor godoc
// @Summary      Create a doctor
// @Description  Register a new doctor; the department reference is optional
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createDoctorRequest true "Doctor data"
// @Success      200 {object} util.APIResponse{data=model.Doctor} "Doctor created"
// @Failure      400 {object} util.APIResponse "Validation or constraint error"
// @Router       /doctor [post]
func CreateDoctor(c *gin.Context) {
	var req createDoctorRequest
	if !bindJSONOrRespond(c, &req, "Invalid input data") {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	doctor := model.Doctor{
		FullName:       util.NormalizeName(req.FullName),
		Specialization: req.Specialization,
		DepartmentID:   req.DepartmentID,
	}
	if err := doctor.Validate(); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid doctor data", Err: err})
		return
	}
	if doctor.DepartmentID != nil && !ensureDepartmentExists(c, db, *doctor.DepartmentID) {
		return
	}

	if err := db.Create(&doctor).Error; err != nil {
		respondCreateError(c, "doctor", err)
		return
	}

	util.LogEntityCreated("doctor", doctor.ID, c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctor created",
		Data: doctor,
	})
}

// GetDoctor godoc
// @Summary      Get a doctor by ID
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=model.Doctor} "Doctor retrieved"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Router       /doctor/{id} [get]
func GetDoctor(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var doctor model.Doctor
	err := db.First(&doctor, id).Error
	respondLookup(c, "doctor", doctor, err)
}
