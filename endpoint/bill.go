package endpoint

import (
	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
)

// ListBills godoc
// @Summary      List all bills
// @Tags         Bill
// @Produce      json
// @Param        limit query int false "Limit number of results" default(100)
// @Param        offset query int false "Offset for pagination" default(0)
// @Success      200 {object} util.APIResponse{data=[]model.Bill} "Bills retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /bill [get]
func ListBills(c *gin.Context) {
	q := parseListQuery(c)
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var bills []model.Bill
	if err := db.Limit(q.Limit).Offset(q.Offset).Order("bill_date ASC").Find(&bills).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve bills",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Bills retrieved",
		Data: bills,
	})
}

type createBillRequest struct {
	PatientID uint    `json:"patient_id" example:"1"`
	Amount    float64 `json:"amount" example:"2000.00"`
	BillDate  string  `json:"bill_date" example:"2025-02-10"`
	Status    string  `json:"status,omitempty" example:"Unpaid"`
}

// CreateBill godoc
// @Summary      Create a bill
// @Description  Issue a bill to a patient; status defaults to Unpaid and the amount must not be negative
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createBillRequest true "Bill data"
// @Success      200 {object} util.APIResponse{data=model.Bill} "Bill created"
// @Failure      400 {object} util.APIResponse "Validation or constraint error"
// @Router       /bill [post]
func CreateBill(c *gin.Context) {
	var req createBillRequest
	if !bindJSONOrRespond(c, &req, "Invalid input data") {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	bill := model.Bill{
		PatientID: req.PatientID,
		Amount:    req.Amount,
		BillDate:  req.BillDate,
		Status:    req.Status,
	}
	if bill.Status == "" {
		bill.Status = model.BillUnpaid
	}
	if err := bill.Validate(); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid bill data", Err: err})
		return
	}
	if !ensurePatientExists(c, db, bill.PatientID) {
		return
	}

	if err := db.Create(&bill).Error; err != nil {
		respondCreateError(c, "bill", err)
		return
	}

	util.LogEntityCreated("bill", bill.ID, c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Bill created",
		Data: bill,
	})
}

// GetBill godoc
// @Summary      Get a bill by ID
// @Tags         Bill
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} util.APIResponse{data=model.Bill} "Bill retrieved"
// @Failure      404 {object} util.APIResponse "Bill not found"
// @Router       /bill/{id} [get]
func GetBill(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var bill model.Bill
	err := db.First(&bill, id).Error
	respondLookup(c, "bill", bill, err)
}
