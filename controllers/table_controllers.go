package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pepperjack/tableorder/tablecodes"
	"github.com/pepperjack/tableorder/utils"
)

type TableController struct{}

func NewTableController() *TableController {
	return &TableController{}
}

// ResolveTableCode -> GET /table-code/:code
// Exchanges the opaque code from a QR scan for the table id. Malformed and
// unknown codes get the same 404 so nothing can be probed.
func (tc *TableController) ResolveTableCode(c *gin.Context) {
	code := c.Param("code")
	tableID, ok := tablecodes.Resolve(code)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("invalid table code"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table resolved", gin.H{"table_id": tableID})
}
