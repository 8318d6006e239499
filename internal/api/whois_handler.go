package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
	"github.com/jy02739244/Domain-AutoCheck/internal/service"
)

const clientIDHeader = "X-Client-ID"

type WhoisHandler struct {
	Whois *service.WhoisService
}

func NewWhoisHandler(s *service.WhoisService) *WhoisHandler {
	return &WhoisHandler{Whois: s}
}

type whoisRequest struct {
	Domain string `json:"domain"`
}

type batchWhoisRequest struct {
	Domains []string `json:"domains" validate:"required,min=1,max=50"`
}

// clientKey 同一個 client 的新查詢會取代舊的
func clientKey(c *gin.Context) string {
	if id := c.GetHeader(clientIDHeader); id != "" {
		return id
	}
	return c.ClientIP()
}

// Lookup 查詢完成 (不論上游成功與否) 一律 200；只有輸入錯誤回 400
func (h *WhoisHandler) Lookup(c *gin.Context) {
	var req whoisRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, err := h.Whois.LookupFor(c.Request.Context(), clientKey(c), req.Domain)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// LookupBatch 結果順序與輸入相同
func (h *WhoisHandler) LookupBatch(c *gin.Context) {
	var req batchWhoisRequest
	if !bindJSON(c, &req) {
		return
	}
	results := h.Whois.LookupMany(c.Request.Context(), req.Domains)
	c.JSON(http.StatusOK, gin.H{"data": results})
}

// Cancel 取消此 client 進行中的查詢
func (h *WhoisHandler) Cancel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cancelled": h.Whois.Cancel(clientKey(c))})
}
