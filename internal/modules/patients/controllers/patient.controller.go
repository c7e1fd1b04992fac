package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medsms-core/internal/modules/patients/dto"
	"medsms-core/internal/modules/patients/services"
	"medsms-core/internal/shared/apperrors"
)

type PatientController struct {
	service *services.PatientService
}

func NewPatientController(service *services.PatientService) *PatientController {
	return &PatientController{service: service}
}

func fail(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}

// List - GET /api/v1/patients
func (c *PatientController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.List()})
}

// Get - GET /api/v1/patients/:id
func (c *PatientController) Get(ctx *gin.Context) {
	patient, err := c.service.Get(ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": patient})
}

// Create - POST /api/v1/patients
func (c *PatientController) Create(ctx *gin.Context) {
	var req dto.PatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
		return
	}
	patient, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": patient})
}

// Update - PUT /api/v1/patients/:id
func (c *PatientController) Update(ctx *gin.Context) {
	var req dto.PatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
		return
	}
	patient, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": patient})
}

// Delete - DELETE /api/v1/patients/:id
func (c *PatientController) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
