package main

import (
	"github.com/gin-gonic/gin"

	"github.com/velvettable/velvet-admin/config"
	"github.com/velvettable/velvet-admin/models"
	"github.com/velvettable/velvet-admin/router"
	"github.com/velvettable/velvet-admin/store"
	"github.com/velvettable/velvet-admin/utils"
)

func init() {
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Everything lives in memory: a restart starts over from the seed
	// lists, matching the reload semantics of the admin frontend.
	seed := models.SeedMenu()
	catalogStore := store.NewCatalogStore(seed, store.NewCounterGenerator(highestID(seed)))
	wineStore := store.NewWineStore(models.SeedWines())
	feed := store.NewNotificationFeed(store.DefaultFeedCapacity)

	r := router.SetupRouter(router.Deps{
		Catalog:    catalogStore,
		Wines:      wineStore,
		Feed:       feed,
		CORSOrigin: cfg.CORSOrigin,
	})

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func highestID(items []models.MenuItem) uint64 {
	var max uint64
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}
