package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/controllers"
	"github.com/pepperjack/tableorder/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Middleware must be attached before any route is registered; gin
	// snapshots each route's handler chain at registration time.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	tableCtrl := controllers.NewTableController()
	kitchenCtrl := controllers.NewKitchenController(db)
	reviewCtrl := controllers.NewReviewController(db)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// -- GUEST (no auth; the table code is the only credential) --
	r.GET("/table-code/:code", tableCtrl.ResolveTableCode)

	r.GET("/menu", menuCtrl.GetAllMenuItems)
	r.GET("/menu/:id", menuCtrl.GetMenuItemByID)

	r.POST("/table/:table_id/order", orderCtrl.SubmitOrder)
	r.GET("/table/:table_id/status", orderCtrl.GetTableStatus)
	r.GET("/table/:table_id/history", orderCtrl.GetTableHistory)
	r.GET("/table/:table_id/special-counts", orderCtrl.GetSpecialCounts)

	r.POST("/reviews", reviewCtrl.CreateReview)
	r.GET("/reviews", reviewCtrl.GetReviews)

	// -- KITCHEN (polling display) --
	r.GET("/kitchen/orders", kitchenCtrl.GetKitchenOrders)
	r.POST("/kitchen/orders/:order_id/complete", kitchenCtrl.CompleteOrder)

	// -- ADMIN --
	admin := r.Group("/admin")
	admin.POST("/menu/manage", menuCtrl.CreateMenuItem)
	admin.PUT("/menu/manage", menuCtrl.UpdateMenuItem)
	admin.DELETE("/menu/manage", menuCtrl.DeleteMenuItem)
	admin.GET("/table-codes", adminCtrl.GetTableCodes)

	// Irreversible bulk clears sit behind the strict limiter.
	danger := admin.Group("/")
	danger.Use(middlewares.NewStrictRateLimiter())
	{
		danger.DELETE("/clear-orders", adminCtrl.ClearOrders)
		danger.DELETE("/clear-reviews", adminCtrl.ClearReviews)
	}

	return r
}
