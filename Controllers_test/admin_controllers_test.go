package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/controllers"
	"github.com/pepperjack/tableorder/models"
	"github.com/pepperjack/tableorder/tablecodes"
)

func setupTestDBForAdmin(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuItem{}, &models.Order{}, &models.OrderLine{}, &models.Review{}))
	return db
}

func setupAdminRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	adminCtrl := controllers.NewAdminController(db)
	tableCtrl := controllers.NewTableController()
	router.DELETE("/admin/clear-orders", adminCtrl.ClearOrders)
	router.DELETE("/admin/clear-reviews", adminCtrl.ClearReviews)
	router.GET("/admin/table-codes", adminCtrl.GetTableCodes)
	router.GET("/table-code/:code", tableCtrl.ResolveTableCode)
	return router
}

func TestClearOrdersIsIdempotent(t *testing.T) {
	db := setupTestDBForAdmin(t)
	router := setupAdminRouter(db)

	order := models.Order{
		TableID:   1,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
		Lines: []models.OrderLine{
			{MenuItemID: 1, Name: "Bulgogi", Quantity: 2, Category: models.CategoryMeat},
		},
	}
	require.NoError(t, db.Create(&order).Error)

	req, _ := http.NewRequest("DELETE", "/admin/clear-orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var orders, lines int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderLine{}).Count(&lines).Error)
	assert.Equal(t, int64(0), orders)
	assert.Equal(t, int64(0), lines)

	// Clearing an already-empty set succeeds and stays empty
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(0), orders)
}

func TestClearReviews(t *testing.T) {
	db := setupTestDBForAdmin(t)
	router := setupAdminRouter(db)

	review := models.Review{CustomerName: "Alex", ServerName: "Linh", Rating: 5, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&review).Error)

	req, _ := http.NewRequest("DELETE", "/admin/clear-reviews", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestTableCodesListing(t *testing.T) {
	db := setupTestDBForAdmin(t)
	router := setupAdminRouter(db)

	req, _ := http.NewRequest("GET", "/admin/table-codes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	codes := body["data"].(map[string]interface{})
	assert.Len(t, codes, len(tablecodes.All()))
}

func TestResolveTableCodeEndpoint(t *testing.T) {
	db := setupTestDBForAdmin(t)
	router := setupAdminRouter(db)

	// Every printed code resolves to its table
	for id, code := range tablecodes.All() {
		req, _ := http.NewRequest("GET", "/table-code/"+code, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(id), data["table_id"])
	}

	// Guessing with a raw table number gets nothing
	req, _ := http.NewRequest("GET", "/table-code/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
