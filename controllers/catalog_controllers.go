package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velvettable/velvet-admin/catalog"
	"github.com/velvettable/velvet-admin/events"
	"github.com/velvettable/velvet-admin/models"
	"github.com/velvettable/velvet-admin/store"
	"github.com/velvettable/velvet-admin/utils"
)

type CatalogController struct {
	Store *store.CatalogStore
	Feed  *store.NotificationFeed
}

func NewCatalogController(s *store.CatalogStore, feed *store.NotificationFeed) *CatalogController {
	return &CatalogController{Store: s, Feed: feed}
}

// itemForm is the create/edit dialog payload. Category is validated
// against the closed enum; free-text categories are rejected.
type itemForm struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    int64   `json:"price"`
	Rating   float64 `json:"rating"`
}

func (f *itemForm) validate() (models.MenuItem, error) {
	cat := models.Category(f.Category)
	if !cat.Valid() {
		return models.MenuItem{}, fmt.Errorf("invalid category %q", f.Category)
	}
	if f.Price < 0 {
		return models.MenuItem{}, errors.New("price must not be negative")
	}
	if f.Rating < 0 || f.Rating > 5 {
		return models.MenuItem{}, errors.New("rating must be between 0 and 5")
	}
	return models.MenuItem{
		Name:     f.Name,
		Category: cat,
		Price:    f.Price,
		Rating:   f.Rating,
	}, nil
}

// GetItems runs the view pipeline over the current catalog snapshot.
// Query params: search, category, sort_by, page, rows.
func (cc *CatalogController) GetItems(c *gin.Context) {
	q, err := listQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	filtered := catalog.Filtered(cc.Store.List(), q)
	pageCount := catalog.PageCount(len(filtered), q.RowsPerPage)
	page := catalog.ClampPage(q.Page, pageCount)

	utils.RespondJSON(c, http.StatusOK, "List of items", catalog.View{
		Items:     catalog.Paginate(filtered, page, q.RowsPerPage),
		Filtered:  len(filtered),
		Page:      page,
		PageCount: pageCount,
	})
}

// CreateItem adds a new catalog item and announces it.
func (cc *CatalogController) CreateItem(c *gin.Context) {
	var form itemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := form.validate()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	stored := cc.Store.Add(item)
	cc.Feed.Record(models.SeveritySuccess, "Catalog", "Item added")
	events.BroadcastItemAdded(stored)

	utils.RespondJSON(c, http.StatusCreated, "Item added", stored)
}

// UpdateItem replaces every field of an existing item. Editing an id
// the catalog no longer holds is reported as 404 rather than silently
// ignored.
func (cc *CatalogController) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	var form itemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := form.validate()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := cc.Store.Update(id, item)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	cc.Feed.Record(models.SeveritySuccess, "Catalog", "Item updated")
	events.BroadcastItemUpdated(updated)

	utils.RespondJSON(c, http.StatusOK, "Item updated", updated)
}

// DeleteItem removes an item by id. No undo.
func (cc *CatalogController) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid item id"))
		return
	}

	if err := cc.Store.Remove(id); err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	cc.Feed.Record(models.SeverityInfo, "Catalog", "Item removed")
	events.BroadcastItemRemoved(id)

	utils.RespondJSON(c, http.StatusOK, "Item removed", gin.H{"item_id": id})
}

// ExportItems streams the filtered (not paginated) result set as a
// CSV download named after the current date.
func (cc *CatalogController) ExportItems(c *gin.Context) {
	q, err := listQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	filtered := catalog.Filtered(cc.Store.List(), q)

	var buf bytes.Buffer
	if err := catalog.WriteCSV(&buf, filtered); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.Feed.Record(models.SeveritySuccess, "Catalog", "Exported CSV")
	events.BroadcastCatalogExported(len(filtered))

	filename := catalog.ExportFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// listQuery binds the shared listing/export query params.
func listQuery(c *gin.Context) (catalog.Query, error) {
	category := models.Category(c.DefaultQuery("category", string(models.CategoryAll)))
	if category != models.CategoryAll && !category.Valid() {
		return catalog.Query{}, fmt.Errorf("unknown category %q", string(category))
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return catalog.Query{}, errors.New("invalid page")
	}

	rows, err := strconv.Atoi(c.DefaultQuery("rows", strconv.Itoa(catalog.DefaultRowsPerPage)))
	if err != nil {
		return catalog.Query{}, errors.New("invalid rows")
	}

	return catalog.Query{
		Search:      c.Query("search"),
		Category:    category,
		SortBy:      models.ParseSortMode(c.DefaultQuery("sort_by", string(models.SortByRating))),
		Page:        page,
		RowsPerPage: catalog.NormalizeRows(rows),
	}, nil
}
