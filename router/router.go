package router

import (
	"github.com/gin-gonic/gin"

	"github.com/velvettable/velvet-admin/controllers"
	"github.com/velvettable/velvet-admin/middlewares"
	"github.com/velvettable/velvet-admin/store"
)

// Deps bundles the stores the handlers operate on.
type Deps struct {
	Catalog    *store.CatalogStore
	Wines      *store.WineStore
	Feed       *store.NotificationFeed
	CORSOrigin string
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(deps.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	catalogCtrl := controllers.NewCatalogController(deps.Catalog, deps.Feed)
	wineCtrl := controllers.NewWineController(deps.Wines)
	receiptCtrl := controllers.NewReceiptController(deps.Catalog, deps.Feed)
	notificationCtrl := controllers.NewNotificationController(deps.Feed)
	dashboardCtrl := controllers.NewDashboardController(deps.Catalog, deps.Wines)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Live event stream (the admin UI's toast source)
	r.GET("/events/ws", controllers.EventsHandler)

	// Catalog
	r.GET("/items", catalogCtrl.GetItems)
	r.POST("/items", catalogCtrl.CreateItem)
	r.PATCH("/items/:item_id", catalogCtrl.UpdateItem)
	r.DELETE("/items/:item_id", catalogCtrl.DeleteItem)
	r.GET("/items/export", middlewares.NewExportRateLimiter(), catalogCtrl.ExportItems)

	// Wine collection (read-only)
	r.GET("/wines", wineCtrl.GetAllWines)

	// Receipts
	r.POST("/receipts", middlewares.ReceiptLoggerMiddleware(), receiptCtrl.GenerateReceipt)

	// Notifications + dashboard
	r.GET("/notifications", notificationCtrl.GetAllNotifications)
	r.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)

	return r
}
