package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medsms-core/internal/domain"
	"medsms-core/internal/modules/catalog/services"
	"medsms-core/internal/shared/apperrors"
)

// CatalogController expõe os cadastros simples. As entidades de domínio são
// o próprio formato de transporte: as tags JSON coincidem com o documento
// de export/import, então não há DTO intermediário.
type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

func fail(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}

func badPayload(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
}

// --- Médicos ---

// ListDoctors - GET /api/v1/catalog/doctors
func (c *CatalogController) ListDoctors(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.ListDoctors()})
}

// SaveDoctor - POST /api/v1/catalog/doctors
// Upsert: payload sem id cria, com id atualiza
func (c *CatalogController) SaveDoctor(ctx *gin.Context) {
	var doctor domain.Doctor
	if err := ctx.ShouldBindJSON(&doctor); err != nil {
		badPayload(ctx, err)
		return
	}
	saved, err := c.service.SaveDoctor(ctx.Request.Context(), doctor)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}

// DeleteDoctor - DELETE /api/v1/catalog/doctors/:id
func (c *CatalogController) DeleteDoctor(ctx *gin.Context) {
	if err := c.service.DeleteDoctor(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Locais ---

// ListLocations - GET /api/v1/catalog/locations
func (c *CatalogController) ListLocations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.ListLocations()})
}

// SaveLocation - POST /api/v1/catalog/locations
func (c *CatalogController) SaveLocation(ctx *gin.Context) {
	var location domain.Location
	if err := ctx.ShouldBindJSON(&location); err != nil {
		badPayload(ctx, err)
		return
	}
	saved, err := c.service.SaveLocation(ctx.Request.Context(), location)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}

// DeleteLocation - DELETE /api/v1/catalog/locations/:id
func (c *CatalogController) DeleteLocation(ctx *gin.Context) {
	if err := c.service.DeleteLocation(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Municípios ---

// ListMunicipalities - GET /api/v1/catalog/municipalities
func (c *CatalogController) ListMunicipalities(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.ListMunicipalities()})
}

// SaveMunicipality - POST /api/v1/catalog/municipalities
func (c *CatalogController) SaveMunicipality(ctx *gin.Context) {
	var municipality domain.Municipality
	if err := ctx.ShouldBindJSON(&municipality); err != nil {
		badPayload(ctx, err)
		return
	}
	saved, err := c.service.SaveMunicipality(ctx.Request.Context(), municipality)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}

// DeleteMunicipality - DELETE /api/v1/catalog/municipalities/:id
func (c *CatalogController) DeleteMunicipality(ctx *gin.Context) {
	if err := c.service.DeleteMunicipality(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Tipos de procedimento ---

// ListProcedureTypes - GET /api/v1/catalog/procedure-types
func (c *CatalogController) ListProcedureTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.ListProcedureTypes()})
}

// SaveProcedureType - POST /api/v1/catalog/procedure-types
func (c *CatalogController) SaveProcedureType(ctx *gin.Context) {
	var procedureType domain.ProcedureType
	if err := ctx.ShouldBindJSON(&procedureType); err != nil {
		badPayload(ctx, err)
		return
	}
	saved, err := c.service.SaveProcedureType(ctx.Request.Context(), procedureType)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}

// DeleteProcedureType - DELETE /api/v1/catalog/procedure-types/:id
func (c *CatalogController) DeleteProcedureType(ctx *gin.Context) {
	if err := c.service.DeleteProcedureType(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Ocorrências ---

// ListOccurrences - GET /api/v1/catalog/occurrences
func (c *CatalogController) ListOccurrences(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.ListOccurrences()})
}

// SaveOccurrence - POST /api/v1/catalog/occurrences
func (c *CatalogController) SaveOccurrence(ctx *gin.Context) {
	var occurrence domain.Occurrence
	if err := ctx.ShouldBindJSON(&occurrence); err != nil {
		badPayload(ctx, err)
		return
	}
	saved, err := c.service.SaveOccurrence(ctx.Request.Context(), occurrence)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}

// DeleteOccurrence - DELETE /api/v1/catalog/occurrences/:id
func (c *CatalogController) DeleteOccurrence(ctx *gin.Context) {
	if err := c.service.DeleteOccurrence(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Procedimentos ---

// ListProcedures - GET /api/v1/catalog/procedures
func (c *CatalogController) ListProcedures(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.ListProcedures()})
}

// SaveProcedure - POST /api/v1/catalog/procedures
func (c *CatalogController) SaveProcedure(ctx *gin.Context) {
	var procedure domain.Procedure
	if err := ctx.ShouldBindJSON(&procedure); err != nil {
		badPayload(ctx, err)
		return
	}
	saved, err := c.service.SaveProcedure(ctx.Request.Context(), procedure)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}

// DeleteProcedure - DELETE /api/v1/catalog/procedures/:id
func (c *CatalogController) DeleteProcedure(ctx *gin.Context) {
	if err := c.service.DeleteProcedure(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// --- Campanhas ---

// ListCampaigns - GET /api/v1/catalog/campaigns
func (c *CatalogController) ListCampaigns(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.ListCampaigns()})
}

// SaveCampaign - POST /api/v1/catalog/campaigns
func (c *CatalogController) SaveCampaign(ctx *gin.Context) {
	var campaign domain.HealthCampaign
	if err := ctx.ShouldBindJSON(&campaign); err != nil {
		badPayload(ctx, err)
		return
	}
	saved, err := c.service.SaveCampaign(ctx.Request.Context(), campaign)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}

// DeleteCampaign - DELETE /api/v1/catalog/campaigns/:id
func (c *CatalogController) DeleteCampaign(ctx *gin.Context) {
	if err := c.service.DeleteCampaign(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
