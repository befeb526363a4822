package endpoint

import (
	"fmt"

	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
)

// ListStaff godoc
// @Summary      List all staff
// @Tags         Staff
// @Produce      json
// @Param        limit query int false "Limit number of results" default(100)
// @Param        offset query int false "Offset for pagination" default(0)
// @Success      200 {object} util.APIResponse{data=[]model.Staff} "Staff retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /staff [get]
func ListStaff(c *gin.Context) {
	q := parseListQuery(c)
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var staff []model.Staff
	if err := db.Limit(q.Limit).Offset(q.Offset).Find(&staff).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve staff",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Staff retrieved",
		Data: staff,
	})
}

type createStaffRequest struct {
	FullName     string `json:"full_name" example:"Eka Pratiwi"`
	Role         string `json:"role" example:"Nurse"`
	PhoneNumber  string `json:"phone_number" example:"081200000001"`
	DepartmentID uint   `json:"department_id" example:"1"`
}

// CreateStaff godoc
// @Summary      Create a staff member
// @Description  Register a staff member; the phone number must be unused
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createStaffRequest true "Staff data"
// @Success      200 {object} util.APIResponse{data=model.Staff} "Staff created"
// @Failure      400 {object} util.APIResponse "Validation or constraint error"
// @Router       /staff [post]
func CreateStaff(c *gin.Context) {
	var req createStaffRequest
	if !bindJSONOrRespond(c, &req, "Invalid input data") {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	staff := model.Staff{
		FullName:     util.NormalizeName(req.FullName),
		Role:         req.Role,
		PhoneNumber:  req.PhoneNumber,
		DepartmentID: req.DepartmentID,
	}
	if err := staff.Validate(); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid staff data", Err: err})
		return
	}
	if staff.DepartmentID != 0 && !ensureDepartmentExists(c, db, staff.DepartmentID) {
		return
	}

	if staff.PhoneNumber != "" {
		var existing model.Staff
		if err := db.Where("phone_number = ?", staff.PhoneNumber).First(&existing).Error; err == nil {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "A staff member with this phone number already exists",
				Err: fmt.Errorf("duplicate phone number %s", staff.PhoneNumber),
			})
			return
		}
	}

	if err := db.Create(&staff).Error; err != nil {
		respondCreateError(c, "staff", err)
		return
	}

	util.LogEntityCreated("staff", staff.ID, c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Staff created",
		Data: staff,
	})
}

// GetStaff godoc
// @Summary      Get a staff member by ID
// @Tags         Staff
// @Produce      json
// @Param        id path int true "Staff ID"
// @Success      200 {object} util.APIResponse{data=model.Staff} "Staff retrieved"
// @Failure      404 {object} util.APIResponse "Staff not found"
// @Router       /staff/{id} [get]
func GetStaff(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var staff model.Staff
	err := db.First(&staff, id).Error
	respondLookup(c, "staff", staff, err)
}
