package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velvettable/velvet-admin/store"
	"github.com/velvettable/velvet-admin/utils"
)

type NotificationController struct {
	Feed *store.NotificationFeed
}

func NewNotificationController(feed *store.NotificationFeed) *NotificationController {
	return &NotificationController{Feed: feed}
}

// GetAllNotifications lists the retained notifications, newest first.
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Recent notifications", nc.Feed.Recent())
}
