package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jy02739244/Domain-AutoCheck/internal/service"
)

type CategoryHandler struct {
	Domains *service.DomainService
}

func NewCategoryHandler(d *service.DomainService) *CategoryHandler {
	return &CategoryHandler{Domains: d}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
}

type moveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.Domains.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.Domains.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": cat})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.Domains.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cat})
}

// Delete 該分類下的域名會移回預設分類
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.Domains.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已刪除"})
}

func (h *CategoryHandler) Move(c *gin.Context) {
	var req moveRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Domains.MoveCategory(c.Request.Context(), c.Param("id"), req.Direction == "up"); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已更新排序"})
}
