package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/models"
	"github.com/pepperjack/tableorder/services"
	"github.com/pepperjack/tableorder/utils"
)

// OrderController serves the table-facing ordering endpoints. Every submit
// attempt goes through the admission service; this controller only maps
// its verdicts onto HTTP.
type OrderController struct {
	DB        *gorm.DB
	Admission *services.AdmissionService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:        db,
		Admission: services.NewAdmissionService(db),
	}
}

func parseTableID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("table_id"), 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table id"))
		return 0, false
	}
	return uint(id), true
}

// SubmitOrder -> POST /table/:table_id/order
// 201 with the new order id, 429 while the cooldown runs, 400 for every
// other rejection. Rejections never persist anything.
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	tableID, ok := parseTableID(c)
	if !ok {
		return
	}

	type reqBody struct {
		Items []services.ProposedLine `json:"items" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orderID, err := oc.Admission.Submit(tableID, body.Items)
	if err != nil {
		if rej, isRej := services.AsRejection(err); isRej {
			if rej.Reason == services.RejectCooldown {
				utils.RespondJSON(c, http.StatusTooManyRequests, rej.Message, gin.H{
					"reason":           rej.Reason,
					"cooldown_minutes": rej.CooldownMinutes,
				})
				return
			}
			utils.RespondJSON(c, http.StatusBadRequest, rej.Message, gin.H{
				"reason": rej.Reason,
			})
			return
		}
		utils.ErrorLogger.Printf("Error creating order for table %d: %v", tableID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to create order"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", gin.H{"order_id": orderID})
}

// GetTableStatus -> GET /table/:table_id/status
// Polled by the table page to drive the cooldown banner.
func (oc *OrderController) GetTableStatus(c *gin.Context) {
	tableID, ok := parseTableID(c)
	if !ok {
		return
	}

	canOrder, remaining, err := oc.Admission.Status(tableID)
	if err != nil {
		utils.ErrorLogger.Printf("Error checking status for table %d: %v", tableID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to check status"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table status", gin.H{
		"can_order":        canOrder,
		"cooldown_minutes": remaining,
	})
}

// GetTableHistory -> GET /table/:table_id/history
// Newest first. A storage failure degrades to an empty history so the
// table page still renders.
func (oc *OrderController) GetTableHistory(c *gin.Context) {
	tableID, ok := parseTableID(c)
	if !ok {
		return
	}

	var orders []models.Order
	err := oc.DB.Preload("Lines").
		Where("table_id = ?", tableID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching history for table %d: %v", tableID, err)
		utils.RespondJSON(c, http.StatusOK, "Order history", []models.Order{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order history", orders)
}

// GetSpecialCounts -> GET /table/:table_id/special-counts
// Units of each Special item the table has consumed, for client-side hints
// before submitting.
func (oc *OrderController) GetSpecialCounts(c *gin.Context) {
	tableID, ok := parseTableID(c)
	if !ok {
		return
	}

	counts, err := oc.Admission.SpecialCounts(tableID)
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching special counts for table %d: %v", tableID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch special item counts"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Special item counts", gin.H{"counts": counts})
}
