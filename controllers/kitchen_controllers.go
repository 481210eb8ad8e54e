package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/models"
	"github.com/pepperjack/tableorder/utils"
)

// recentCompletedLimit bounds the completed column of the kitchen display.
const recentCompletedLimit = 20

type KitchenController struct {
	DB *gorm.DB
}

func NewKitchenController(db *gorm.DB) *KitchenController {
	return &KitchenController{DB: db}
}

// GetKitchenOrders -> GET /kitchen/orders
// Pending oldest first so the kitchen works a FIFO queue, plus a bounded
// recent-completed list. The kitchen page polls this on an interval; a
// storage failure degrades to empty lists rather than breaking the display.
func (kc *KitchenController) GetKitchenOrders(c *gin.Context) {
	var pending []models.Order
	err := kc.DB.Preload("Lines").
		Where("status = ?", models.OrderStatusPending).
		Order("created_at ASC").
		Find(&pending).Error
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching pending orders: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Kitchen orders", gin.H{
			"pending":   []models.Order{},
			"completed": []models.Order{},
		})
		return
	}

	var completed []models.Order
	err = kc.DB.Preload("Lines").
		Where("status = ?", models.OrderStatusCompleted).
		Order("completed_at DESC").
		Limit(recentCompletedLimit).
		Find(&completed).Error
	if err != nil {
		utils.ErrorLogger.Printf("Error fetching completed orders: %v", err)
		completed = []models.Order{}
	}

	utils.RespondJSON(c, http.StatusOK, "Kitchen orders", gin.H{
		"pending":   pending,
		"completed": completed,
	})
}

// CompleteOrder -> POST /kitchen/orders/:order_id/complete
// The only mutation the kitchen performs. Completing an already-completed
// order is a no-op; the original completion timestamp is kept.
func (kc *KitchenController) CompleteOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var order models.Order
	if err := kc.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if order.Status == models.OrderStatusCompleted {
		utils.RespondJSON(c, http.StatusOK, "Order already completed", order)
		return
	}

	now := time.Now()
	order.Status = models.OrderStatusCompleted
	order.CompletedAt = &now
	if err := kc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order completed", order)
}
