package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medsms-core/internal/modules/scheduling/dto"
	"medsms-core/internal/modules/scheduling/services"
	"medsms-core/internal/shared/apperrors"
)

type SchedulingController struct {
	service *services.SchedulingService
}

func NewSchedulingController(service *services.SchedulingService) *SchedulingController {
	return &SchedulingController{service: service}
}

func fail(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}

func badPayload(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
}

// List - GET /api/v1/appointments
func (c *SchedulingController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.List()})
}

// Get - GET /api/v1/appointments/:id
func (c *SchedulingController) Get(ctx *gin.Context) {
	app, err := c.service.Get(ctx.Param("id"))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": app})
}

// Create - POST /api/v1/appointments
func (c *SchedulingController) Create(ctx *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload(ctx, err)
		return
	}
	app, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": app})
}

// Update - PUT /api/v1/appointments/:id
// Atualização parcial de referências e data; status fica de fora
func (c *SchedulingController) Update(ctx *gin.Context) {
	var req dto.UpdateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload(ctx, err)
		return
	}
	app, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": app})
}

// UpdateStatus - PATCH /api/v1/appointments/:id/status
func (c *SchedulingController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload(ctx, err)
		return
	}
	app, err := c.service.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": app})
}

// UpdateOccurrence - PATCH /api/v1/appointments/:id/occurrence
func (c *SchedulingController) UpdateOccurrence(ctx *gin.Context) {
	var req dto.UpdateOccurrenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload(ctx, err)
		return
	}
	app, err := c.service.UpdateOccurrence(ctx.Request.Context(), ctx.Param("id"), req.OccurrenceID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": app})
}

// Cancel - POST /api/v1/appointments/:id/cancellation
func (c *SchedulingController) Cancel(ctx *gin.Context) {
	var req dto.CancellationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload(ctx, err)
		return
	}
	app, err := c.service.Cancel(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": app})
}

// Delete - DELETE /api/v1/appointments/:id
func (c *SchedulingController) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
