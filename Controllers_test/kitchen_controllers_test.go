package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/controllers"
	"github.com/pepperjack/tableorder/models"
)

func setupTestDBForKitchen(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuItem{}, &models.Order{}, &models.OrderLine{}))
	return db
}

func setupKitchenRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	kitchenCtrl := controllers.NewKitchenController(db)
	router.GET("/kitchen/orders", kitchenCtrl.GetKitchenOrders)
	router.POST("/kitchen/orders/:order_id/complete", kitchenCtrl.CompleteOrder)
	return router
}

func TestKitchenPendingOldestFirst(t *testing.T) {
	db := setupTestDBForKitchen(t)
	router := setupKitchenRouter(db)

	newer := models.Order{TableID: 1, Status: models.OrderStatusPending,
		CreatedAt: time.Now().Add(-5 * time.Minute)}
	require.NoError(t, db.Create(&newer).Error)
	older := models.Order{TableID: 2, Status: models.OrderStatusPending,
		CreatedAt: time.Now().Add(-20 * time.Minute)}
	require.NoError(t, db.Create(&older).Error)

	req, _ := http.NewRequest("GET", "/kitchen/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	pending := data["pending"].([]interface{})
	require.Len(t, pending, 2)

	// Kitchen works a FIFO queue
	first := pending[0].(map[string]interface{})
	assert.Equal(t, float64(older.ID), first["id"])
	completed := data["completed"].([]interface{})
	assert.Empty(t, completed)
}

func TestCompleteOrderTransition(t *testing.T) {
	db := setupTestDBForKitchen(t)
	router := setupKitchenRouter(db)

	order := models.Order{TableID: 1, Status: models.OrderStatusPending,
		CreatedAt: time.Now().Add(-time.Minute)}
	require.NoError(t, db.Create(&order).Error)

	url := "/kitchen/orders/" + strconv.Itoa(int(order.ID)) + "/complete"
	req, _ := http.NewRequest("POST", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.False(t, got.CompletedAt.Before(got.CreatedAt),
		"completion time must not precede creation time")

	firstCompletedAt := *got.CompletedAt

	// Re-completing is a no-op: status stays completed, timestamp untouched
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusCompleted, got.Status)
	assert.WithinDuration(t, firstCompletedAt, *got.CompletedAt, time.Millisecond)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCompleteUnknownOrder(t *testing.T) {
	db := setupTestDBForKitchen(t)
	router := setupKitchenRouter(db)

	req, _ := http.NewRequest("POST", "/kitchen/orders/999/complete", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req, _ = http.NewRequest("POST", "/kitchen/orders/abc/complete", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
