package controllers

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velvettable/velvet-admin/events"
	"github.com/velvettable/velvet-admin/models"
	"github.com/velvettable/velvet-admin/store"
	"github.com/velvettable/velvet-admin/utils"
)

type ReceiptController struct {
	Store *store.CatalogStore
	Feed  *store.NotificationFeed
	seq   atomic.Uint64
}

func NewReceiptController(s *store.CatalogStore, feed *store.NotificationFeed) *ReceiptController {
	return &ReceiptController{Store: s, Feed: feed}
}

type receiptRequest struct {
	ItemIDs []uint64 `json:"item_ids" binding:"required,min=1"`
}

type receiptLine struct {
	ItemID uint64 `json:"item_id"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// GenerateReceipt builds an order-summary receipt for the selected
// catalog items: one line per item plus a grand total.
func (rc *ReceiptController) GenerateReceipt(c *gin.Context) {
	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var (
		lines []receiptLine
		total int64
	)
	for _, id := range req.ItemIDs {
		item, err := rc.Store.Get(id)
		if err != nil {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("item %d: %w", id, err))
			return
		}
		lines = append(lines, receiptLine{
			ItemID: item.ID,
			Name:   item.Name,
			Price:  utils.FormatCurrencyKES(item.Price),
		})
		total += item.Price
	}

	now := time.Now()
	receiptNumber := fmt.Sprintf("RCP/%s/%06d", now.Format("20060102"), rc.seq.Add(1))

	receipt := struct {
		RestaurantInfo struct {
			Name    string `json:"name"`
			Tagline string `json:"tagline"`
		} `json:"restaurant_info"`
		ReceiptInfo struct {
			Number   string    `json:"number"`
			DateTime time.Time `json:"date_time"`
		} `json:"receipt_info"`
		Lines  []receiptLine `json:"lines"`
		Total  string        `json:"total"`
		Footer string        `json:"footer"`
	}{}
	receipt.RestaurantInfo.Name = "The Velvet Table"
	receipt.RestaurantInfo.Tagline = "Elegant Dining and Exquisite Wines"
	receipt.ReceiptInfo.Number = receiptNumber
	receipt.ReceiptInfo.DateTime = now
	receipt.Lines = lines
	receipt.Total = utils.FormatCurrencyKES(total)
	receipt.Footer = "Thank you for dining with us. Bon Appetit!"

	rc.Feed.Record(models.SeverityInfo, "Receipt", "Receipt printed")
	events.BroadcastReceiptPrinted(receiptNumber)

	utils.RespondJSON(c, http.StatusCreated, "Receipt generated", receipt)
}
