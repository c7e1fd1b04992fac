package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medsms-core/internal/modules/assistant/dto"
	"medsms-core/internal/modules/assistant/services"
	sessioncontrollers "medsms-core/internal/modules/session/controllers"
	"medsms-core/internal/shared/apperrors"
)

type AssistantController struct {
	service *services.AssistantService
}

func NewAssistantController(service *services.AssistantService) *AssistantController {
	return &AssistantController{service: service}
}

func fail(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}

// Chat - POST /api/v1/assistant/chat
// Responde em Server-Sent Events: eventos "message" com fragmentos de
// texto, "done" no fim, "error" em falha depois do início do stream.
func (c *AssistantController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
		return
	}

	sessionID := ctx.GetHeader(sessioncontrollers.SessionHeader)

	started := false
	onDelta := func(text string) error {
		if !started {
			ctx.Header("Content-Type", "text/event-stream")
			ctx.Header("Cache-Control", "no-cache")
			ctx.Header("Connection", "keep-alive")
			started = true
		}
		ctx.SSEvent("message", text)
		ctx.Writer.Flush()
		return nil
	}

	err := c.service.Chat(ctx.Request.Context(), sessionID, req, onDelta)
	if err != nil {
		// Antes do primeiro fragmento ainda dá para responder JSON;
		// depois disso só resta sinalizar dentro do próprio stream
		if !started {
			fail(ctx, err)
			return
		}
		ctx.SSEvent("error", err.Error())
		ctx.Writer.Flush()
		return
	}

	if !started {
		ctx.Header("Content-Type", "text/event-stream")
		ctx.Header("Cache-Control", "no-cache")
		ctx.Header("Connection", "keep-alive")
	}
	ctx.SSEvent("done", "")
	ctx.Writer.Flush()
}

// GetHistory - GET /api/v1/assistant/history
func (c *AssistantController) GetHistory(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": c.service.History()})
}

// SaveHistory - PUT /api/v1/assistant/history
// Substitui o histórico persistido inteiro
func (c *AssistantController) SaveHistory(ctx *gin.Context) {
	var req dto.SaveHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
		return
	}
	messages, err := c.service.SaveHistory(ctx.Request.Context(), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": messages})
}

// Automation - POST /api/v1/assistant/automation
func (c *AssistantController) Automation(ctx *gin.Context) {
	var req dto.AutomationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
		return
	}
	suggestions, err := c.service.Automation(ctx.Request.Context(), ctx.GetHeader(sessioncontrollers.SessionHeader), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": suggestions})
}

// Swot - POST /api/v1/assistant/swot
func (c *AssistantController) Swot(ctx *gin.Context) {
	var req dto.SwotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
		return
	}
	analysis, err := c.service.Swot(ctx.Request.Context(), ctx.GetHeader(sessioncontrollers.SessionHeader), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": analysis})
}
