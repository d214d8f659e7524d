package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velvettable/velvet-admin/models"
	"github.com/velvettable/velvet-admin/store"
	"github.com/velvettable/velvet-admin/utils"
)

type DashboardController struct {
	Catalog *store.CatalogStore
	Wines   *store.WineStore
}

func NewDashboardController(catalog *store.CatalogStore, wines *store.WineStore) *DashboardController {
	return &DashboardController{Catalog: catalog, Wines: wines}
}

// GetDashboardStats summarizes the catalog for the dashboard page.
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	items := dc.Catalog.List()

	var stats struct {
		TotalItems    int            `json:"total_items"`
		TotalWines    int            `json:"total_wines"`
		AverageRating float64        `json:"average_rating"`
		TopPriced     string         `json:"top_priced"`
		ByCategory    map[string]int `json:"by_category"`
	}
	stats.TotalItems = len(items)
	stats.TotalWines = dc.Wines.Len()
	stats.ByCategory = make(map[string]int)
	for _, cat := range models.Categories() {
		stats.ByCategory[string(cat)] = 0
	}

	var (
		ratingSum float64
		topPrice  int64 = -1
	)
	for _, it := range items {
		stats.ByCategory[string(it.Category)]++
		ratingSum += it.Rating
		if it.Price > topPrice {
			topPrice = it.Price
			stats.TopPriced = it.Name
		}
	}
	if len(items) > 0 {
		stats.AverageRating = math.Round(ratingSum/float64(len(items))*100) / 100
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
