package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/models"
	"github.com/pepperjack/tableorder/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouterDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
		&models.Review{},
	))
	return db
}

// The per-IP limiter has to be attached before routes are registered, or
// gin never runs it. Hammering one route from one client past the
// 50-per-second budget must start returning 429s.
func TestGlobalRateLimiterEnforced(t *testing.T) {
	r := SetupRouter(setupRouterDB(t))

	codes := make(map[int]int)
	for i := 0; i < 55; i++ {
		req := httptest.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if i == 0 {
			assert.Equal(t, http.StatusOK, w.Code, "first request must pass")
		}
		codes[w.Code]++
	}

	assert.Equal(t, 50, codes[http.StatusOK])
	assert.Equal(t, 5, codes[http.StatusTooManyRequests])
}
