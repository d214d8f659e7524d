package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velvettable/velvet-admin/store"
	"github.com/velvettable/velvet-admin/utils"
)

type WineController struct {
	Store *store.WineStore
}

func NewWineController(s *store.WineStore) *WineController {
	return &WineController{Store: s}
}

// GetAllWines returns one page of the wine collection. The grid uses
// a fixed page size of five rows.
func (wc *WineController) GetAllWines(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	wines, pageCount := wc.Store.Page(page)

	utils.RespondJSON(c, http.StatusOK, "Wine collection", gin.H{
		"wines":      wines,
		"page":       page,
		"page_count": pageCount,
		"total":      wc.Store.Len(),
	})
}
