package endpoint

import (
	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
)

// ListMedicines godoc
// @Summary      List all medicines
// @Tags         Medicine
// @Produce      json
// @Param        limit query int false "Limit number of results" default(100)
// @Param        offset query int false "Offset for pagination" default(0)
// @Success      200 {object} util.APIResponse{data=[]model.Medicine} "Medicines retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /medicine [get]
func ListMedicines(c *gin.Context) {
	q := parseListQuery(c)
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var medicines []model.Medicine
	if err := db.Limit(q.Limit).Offset(q.Offset).Order("name ASC").Find(&medicines).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve medicines",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Medicines retrieved",
		Data: medicines,
	})
}

type createMedicineRequest struct {
	Name  string  `json:"name" example:"Paracetamol"`
	Type  string  `json:"type" example:"Tablet"`
	Price float64 `json:"price" example:"12.50"`
	Stock int     `json:"stock" example:"120"`
}

// CreateMedicine godoc
// @Summary      Create a medicine
// @Description  Register a medicine; price and stock must not be negative
// @Tags         Medicine
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createMedicineRequest true "Medicine data"
// @Success      200 {object} util.APIResponse{data=model.Medicine} "Medicine created"
// @Failure      400 {object} util.APIResponse "Validation or constraint error"
// @Router       /medicine [post]
func CreateMedicine(c *gin.Context) {
	var req createMedicineRequest
	if !bindJSONOrRespond(c, &req, "Invalid input data") {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	medicine := model.Medicine{
		Name:  util.NormalizeName(req.Name),
		Type:  req.Type,
		Price: req.Price,
		Stock: req.Stock,
	}
	if err := medicine.Validate(); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid medicine data", Err: err})
		return
	}

	if err := db.Create(&medicine).Error; err != nil {
		respondCreateError(c, "medicine", err)
		return
	}

	util.LogEntityCreated("medicine", medicine.ID, c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Medicine created",
		Data: medicine,
	})
}

// GetMedicine godoc
// @Summary      Get a medicine by ID
// @Tags         Medicine
// @Produce      json
// @Param        id path int true "Medicine ID"
// @Success      200 {object} util.APIResponse{data=model.Medicine} "Medicine retrieved"
// @Failure      404 {object} util.APIResponse "Medicine not found"
// @Router       /medicine/{id} [get]
func GetMedicine(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var medicine model.Medicine
	err := db.First(&medicine, id).Error
	respondLookup(c, "medicine", medicine, err)
}
