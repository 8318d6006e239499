package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers 路由需要的所有 handler
type Handlers struct {
	Whois      *WhoisHandler
	Domains    *DomainHandler
	Categories *CategoryHandler
	Telegram   *TelegramHandler
}

// corsMiddleware 前後分離，必須允許跨域
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+clientIDHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// NewRouter metrics 為 nil 時不掛 /metrics
func NewRouter(h Handlers, metrics http.Handler) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	v1 := r.Group("/api")
	{
		v1.POST("/whois", h.Whois.Lookup)            // 單一查詢
		v1.POST("/whois/batch", h.Whois.LookupBatch) // 批次查詢
		v1.DELETE("/whois", h.Whois.Cancel)          // 取消進行中的查詢

		v1.GET("/domains", h.Domains.GetDomains)
		v1.POST("/domains", h.Domains.CreateDomain)
		v1.GET("/domains/:id", h.Domains.GetDomain)
		v1.PUT("/domains/:id", h.Domains.UpdateDomain)
		v1.DELETE("/domains/:id", h.Domains.DeleteDomain)
		v1.POST("/domains/:id/renew", h.Domains.RenewDomain)
		v1.POST("/domains/:id/test-notify", h.Domains.TestNotify)
		v1.GET("/stats", h.Domains.GetStatistics)
		v1.POST("/notifications/run", h.Domains.RunNotifications) // 手動觸發到期檢查
		v1.POST("/cloudflare/import", h.Domains.ImportCloudflare)

		v1.GET("/categories", h.Categories.List)
		v1.POST("/categories", h.Categories.Create)
		v1.PUT("/categories/:id", h.Categories.Update)
		v1.DELETE("/categories/:id", h.Categories.Delete)
		v1.POST("/categories/:id/move", h.Categories.Move)

		v1.GET("/telegram", h.Telegram.Get)
		v1.POST("/telegram", h.Telegram.Save)
		v1.POST("/telegram/test", h.Telegram.Test)
	}
	return r
}
