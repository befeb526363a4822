package endpoint

import (
	"fmt"

	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
)

// ListDepartments godoc
// @Summary      List all departments
// @Tags         Department
// @Produce      json
// @Param        limit query int false "Limit number of results" default(100)
// @Param        offset query int false "Offset for pagination" default(0)
// @Success      200 {object} util.APIResponse{data=[]model.Department} "Departments retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /department [get]
func ListDepartments(c *gin.Context) {
	q := parseListQuery(c)
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var departments []model.Department
	if err := db.Limit(q.Limit).Offset(q.Offset).Find(&departments).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve departments",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Departments retrieved",
		Data: departments,
	})
}

type createDepartmentRequest struct {
	Name string `json:"name" example:"Cardiology"`
}

// CreateDepartment godoc
// @Summary      Create a department
// @Tags         Department
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createDepartmentRequest true "Department data"
// @Success      200 {object} util.APIResponse{data=model.Department} "Department created"
// @Failure      400 {object} util.APIResponse "Validation or constraint error"
// @Router       /department [post]
func CreateDepartment(c *gin.Context) {
	var req createDepartmentRequest
	if !bindJSONOrRespond(c, &req, "Invalid input data") {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	department := model.Department{Name: util.NormalizeName(req.Name)}
	if err := department.Validate(); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid department data", Err: err})
		return
	}

	var existing model.Department
	if err := db.Where("name = ?", department.Name).First(&existing).Error; err == nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "A department with this name already exists",
			Err: fmt.Errorf("duplicate department name %s", department.Name),
		})
		return
	}

	if err := db.Create(&department).Error; err != nil {
		respondCreateError(c, "department", err)
		return
	}

	util.LogEntityCreated("department", department.ID, c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Department created",
		Data: department,
	})
}

// GetDepartment godoc
// @Summary      Get a department by ID
// @Tags         Department
// @Produce      json
// @Param        id path int true "Department ID"
// @Success      200 {object} util.APIResponse{data=model.Department} "Department retrieved"
// @Failure      404 {object} util.APIResponse "Department not found"
// @Router       /department/{id} [get]
func GetDepartment(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var department model.Department
	err := db.First(&department, id).Error
	respondLookup(c, "department", department, err)
}
