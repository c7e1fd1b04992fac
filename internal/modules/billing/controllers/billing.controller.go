package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medsms-core/internal/domain"
	"medsms-core/internal/modules/billing/dto"
	"medsms-core/internal/modules/billing/services"
	"medsms-core/internal/shared/apperrors"
)

type BillingController struct {
	service *services.BillingService
}

func NewBillingController(service *services.BillingService) *BillingController {
	return &BillingController{service: service}
}

func fail(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}

// ListTables - GET /api/v1/price-tables
func (c *BillingController) ListTables(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.ListTables()})
}

// SaveTable - POST /api/v1/price-tables
func (c *BillingController) SaveTable(ctx *gin.Context) {
	var table domain.PriceTable
	if err := ctx.ShouldBindJSON(&table); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
		return
	}
	saved, err := c.service.SaveTable(ctx.Request.Context(), table)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}

// DeleteTable - DELETE /api/v1/price-tables/:id
func (c *BillingController) DeleteTable(ctx *gin.Context) {
	if err := c.service.DeleteTable(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// ListTableEntries - GET /api/v1/price-tables/:id/entries
func (c *BillingController) ListTableEntries(ctx *gin.Context) {
	entries, err := c.service.ListTableEntries(ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// UpdateEntries - PUT /api/v1/price-tables/:id/entries
// Substitui a grade inteira da tabela
func (c *BillingController) UpdateEntries(ctx *gin.Context) {
	var req dto.UpdateEntriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
		return
	}
	entries, err := c.service.UpdateEntries(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// ListEntries - GET /api/v1/price-table-entries
// Todas as entradas, de todas as tabelas
func (c *BillingController) ListEntries(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.ListEntries()})
}
