package endpoint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ariebrainware/basis-data-rs/middleware"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

func getDBOrRespond(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database connection not available", Err: fmt.Errorf("db is nil")})
		return nil, false
	}
	return db, true
}

// getIDParam parses the numeric :id path parameter or responds with 400.
func getIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid ID parameter",
			Err: fmt.Errorf("id must be a positive integer, got %q", raw),
		})
		return 0, false
	}
	return uint(id), true
}

type listQuery struct {
	Limit  int
	Offset int
}

func parseListQuery(c *gin.Context) listQuery {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return listQuery{Limit: limit, Offset: offset}
}

// isConstraintViolation reports whether a create failed on a uniqueness or
// foreign-key constraint rather than on connectivity. The driver error text
// is the only signal gorm exposes uniformly across MySQL and SQLite.
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "foreign key")
}

// respondCreateError maps a failed insert to the right API error class.
func respondCreateError(c *gin.Context, entity string, err error) {
	if isConstraintViolation(err) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("%s violates a database constraint", entity),
			Err: err,
		})
		return
	}
	util.CallServerError(c, util.APIErrorParams{
		Msg: fmt.Sprintf("Failed to create %s", entity),
		Err: err,
	})
}

// respondLookup writes the standard single-row lookup responses: 404 when
// the row does not exist, 500 on store errors, 200 with the row otherwise.
func respondLookup(c *gin.Context, entity string, row interface{}, err error) {
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: fmt.Sprintf("%s not found", entity),
			Err: err,
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Failed to retrieve %s", entity),
			Err: err,
		})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  fmt.Sprintf("%s retrieved", entity),
		Data: row,
	})
}
