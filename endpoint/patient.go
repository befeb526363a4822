package endpoint

import (
	"fmt"

	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func fetchPatients(db *gorm.DB, limit, offset int, keyword string) ([]model.Patient, int64, error) {
	var patients []model.Patient
	var totalPatient int64

	query := db.Order("patients.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if keyword != "" {
		kw := "%" + keyword + "%"
		query = query.Where("full_name LIKE ? OR phone_number LIKE ? OR address LIKE ?", kw, kw, kw)
	}

	if err := query.Find(&patients).Error; err != nil {
		return nil, 0, err
	}

	db.Model(&model.Patient{}).Count(&totalPatient)
	return patients, totalPatient, nil
}

// ListPatients godoc
// @Summary      List all patients
// @Description  Get a paginated list of patients with optional keyword filtering
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Param        offset query int false "Offset for pagination"
// @Param        keyword query string false "Search keyword for patient name, phone, or address"
// @Success      200 {object} util.APIResponse{data=object} "Patients retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [get]
func ListPatients(c *gin.Context) {
	q := parseListQuery(c)
	keyword := c.Query("keyword")

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	patients, totalPatient, err := fetchPatients(db, q.Limit, q.Offset, keyword)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve patients",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patients retrieved",
		Data: map[string]interface{}{"total": totalPatient, "total_fetched": len(patients), "patients": patients},
	})
}

type createPatientRequest struct {
	FullName    string `json:"full_name" example:"Andi Saputra"`
	Age         int    `json:"age" example:"34"`
	Gender      string `json:"gender" example:"M"`
	PhoneNumber string `json:"phone_number" example:"081100000001"`
	Address     string `json:"address" example:"Jl. Merdeka 1, Jakarta"`
}

// CreatePatient godoc
// @Summary      Create a patient
// @Description  Register a new patient; gender must be one of M, F, O and the phone number must be unused
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createPatientRequest true "Patient data"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient created"
// @Failure      400 {object} util.APIResponse "Validation or constraint error"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [post]
func CreatePatient(c *gin.Context) {
	var req createPatientRequest
	if !bindJSONOrRespond(c, &req, "Invalid input data") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	patient := model.Patient{
		FullName:    util.NormalizeName(req.FullName),
		Age:         req.Age,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := patient.Validate(); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid patient data", Err: err})
		return
	}

	// Pre-check the unique phone so the common case gets a clear message;
	// the database index still backs it up under concurrent inserts.
	if patient.PhoneNumber != "" {
		var existing model.Patient
		if err := db.Where("phone_number = ?", patient.PhoneNumber).First(&existing).Error; err == nil {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "A patient with this phone number already exists",
				Err: fmt.Errorf("duplicate phone number %s", patient.PhoneNumber),
			})
			return
		}
	}

	if err := db.Create(&patient).Error; err != nil {
		respondCreateError(c, "patient", err)
		return
	}

	util.LogEntityCreated("patient", patient.ID, c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient created",
		Data: patient,
	})
}

// GetPatient godoc
// @Summary      Get a patient by ID
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient retrieved"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patient/{id} [get]
func GetPatient(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var patient model.Patient
	err := db.First(&patient, id).Error
	respondLookup(c, "patient", patient, err)
}
