package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
	"github.com/jy02739244/Domain-AutoCheck/internal/service"
)

type DomainHandler struct {
	Domains    *service.DomainService
	Cron       *service.CronService
	Cloudflare *service.CloudflareService
}

func NewDomainHandler(d *service.DomainService, cron *service.CronService, cf *service.CloudflareService) *DomainHandler {
	return &DomainHandler{Domains: d, Cron: cron, Cloudflare: cf}
}

// domainRequest 新增/編輯共用，日期格式 YYYY-MM-DD
type domainRequest struct {
	Name              string                 `json:"name" validate:"required,fqdn"`
	RegistrationDate  string                 `json:"registration_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate        string                 `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	Registrar         string                 `json:"registrar" validate:"max=200"`
	RegisteredAccount string                 `json:"registered_account" validate:"max=200"`
	CategoryID        string                 `json:"category_id"`
	CustomNote        string                 `json:"custom_note" validate:"max=500"`
	NoteColor         string                 `json:"note_color"`
	RenewLink         string                 `json:"renew_link" validate:"omitempty,url"`
	Price             string                 `json:"price"`
	RenewCycle        *domain.RenewCycle     `json:"renew_cycle"`
	NotifySettings    *domain.NotifySettings `json:"notify_settings"`
}

func (r domainRequest) record() domain.DomainRecord {
	return domain.DomainRecord{
		Name:              r.Name,
		RegistrationDate:  parseDate(r.RegistrationDate),
		ExpiryDate:        parseDate(r.ExpiryDate),
		Registrar:         r.Registrar,
		RegisteredAccount: r.RegisteredAccount,
		CategoryID:        r.CategoryID,
		CustomNote:        r.CustomNote,
		NoteColor:         r.NoteColor,
		RenewLink:         r.RenewLink,
		Price:             r.Price,
		RenewCycle:        r.RenewCycle,
		NotifySettings:    r.NotifySettings,
	}
}

type renewRequest struct {
	Cycle         *domain.RenewCycle `json:"cycle"`
	NewExpiryDate string             `json:"new_expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// =============================================================================
// Query APIs (讀取類)
// =============================================================================

// GetDomains 域名列表，附帶剩餘天數與進度
func (h *DomainHandler) GetDomains(c *gin.Context) {
	views, err := h.Domains.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": views, "total": len(views)})
}

func (h *DomainHandler) GetDomain(c *gin.Context) {
	rec, err := h.Domains.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rec})
}

// GetStatistics 獲取儀表板數據
func (h *DomainHandler) GetStatistics(c *gin.Context) {
	stats, err := h.Domains.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// =============================================================================
// Command APIs (操作類)
// =============================================================================

func (h *DomainHandler) CreateDomain(c *gin.Context) {
	var req domainRequest
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.Domains.Create(c.Request.Context(), req.record())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": rec})
}

func (h *DomainHandler) UpdateDomain(c *gin.Context) {
	var req domainRequest
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.Domains.Update(c.Request.Context(), c.Param("id"), req.record())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rec})
}

func (h *DomainHandler) DeleteDomain(c *gin.Context) {
	if err := h.Domains.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已刪除"})
}

// RenewDomain 未帶 new_expiry_date 時依週期推算
func (h *DomainHandler) RenewDomain(c *gin.Context) {
	var req renewRequest
	if !bindJSON(c, &req) {
		return
	}

	in := service.RenewRequest{Cycle: req.Cycle}
	if req.NewExpiryDate != "" {
		t := parseDate(req.NewExpiryDate)
		in.NewExpiry = &t
	}

	rec, err := h.Domains.Renew(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rec})
}

// TestNotify 以此域名發送一則預覽提醒
func (h *DomainHandler) TestNotify(c *gin.Context) {
	res, err := h.Domains.TestNotify(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondDispatch(c, res)
}

// RunNotifications 手動觸發到期檢查，同步回傳執行摘要
func (h *DomainHandler) RunNotifications(c *gin.Context) {
	logrus.Info("🚀 [API] 手動觸發到期檢查")
	report := h.Cron.CheckExpiringDomains(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": report})
}

// ImportCloudflare 從 Cloudflare 匯入尚未追蹤的 Zone
func (h *DomainHandler) ImportCloudflare(c *gin.Context) {
	start := time.Now()
	stats, err := h.Cloudflare.ImportZones(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Cloudflare 匯入完成",
		"data":     stats,
		"duration": time.Since(start).String(),
	})
}

// respondDispatch 發送失敗依錯誤類型回應 (設定錯誤 400、上游錯誤 502)
func respondDispatch(c *gin.Context, res service.DispatchResult) {
	if res.Success {
		c.JSON(http.StatusOK, res)
		return
	}
	c.JSON(statusFor(res.Err), res)
}
