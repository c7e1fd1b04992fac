package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medsms-core/internal/modules/reports/dto"
	"medsms-core/internal/modules/reports/services"
)

type ReportsController struct {
	service *services.ReportsService
}

func NewReportsController(service *services.ReportsService) *ReportsController {
	return &ReportsController{service: service}
}

// Dashboard - GET /api/v1/reports/dashboard
// Filtros via query string: doctorId, municipalityId, procedureTypeId,
// campaignId
func (c *ReportsController) Dashboard(ctx *gin.Context) {
	var filter dto.Filter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Filtros inválidos.", "details": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.Dashboard(filter)})
}
