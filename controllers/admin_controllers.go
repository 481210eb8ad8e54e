package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/models"
	"github.com/pepperjack/tableorder/tablecodes"
	"github.com/pepperjack/tableorder/utils"
)

// AdminController holds the danger-zone operations. There is no server-side
// confirmation on the bulk clears; the admin UI asks before calling.
type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// ClearOrders -> DELETE /admin/clear-orders
// Removes every order and its lines. Irreversible, idempotent.
func (ac *AdminController) ClearOrders(c *gin.Context) {
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Order{}).Error
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error clearing orders: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All orders have been deleted", nil)
}

// ClearReviews -> DELETE /admin/clear-reviews
func (ac *AdminController) ClearReviews(c *gin.Context) {
	if err := ac.DB.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
		utils.ErrorLogger.Printf("Error clearing reviews: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All reviews have been deleted", nil)
}

// GetTableCodes -> GET /admin/table-codes
// The id-to-code mapping, used to print QR codes for each table.
func (ac *AdminController) GetTableCodes(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Table codes", tablecodes.All())
}
