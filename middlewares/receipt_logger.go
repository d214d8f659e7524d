package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/velvettable/velvet-admin/utils"
)

func ReceiptLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.InfoLogger.Printf("Generating receipt for %s", c.ClientIP())

		c.Next()

		if c.Writer.Status() < 300 {
			utils.InfoLogger.Printf("Receipt generated successfully")
		} else {
			utils.ErrorLogger.Printf("Failed to generate receipt (status %d)", c.Writer.Status())
		}
	}
}
