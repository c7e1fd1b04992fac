package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medsms-core/internal/modules/session/dto"
	"medsms-core/internal/modules/session/services"
	"medsms-core/internal/shared/apperrors"
)

// SessionHeader identifica a sessão do cliente em todas as rotas que
// dependem de preferências de IA.
const SessionHeader = "X-Session-ID"

type SessionController struct {
	service *services.SessionService
}

func NewSessionController(service *services.SessionService) *SessionController {
	return &SessionController{service: service}
}

func fail(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}

// Create - POST /api/v1/sessions
func (c *SessionController) Create(ctx *gin.Context) {
	session, err := c.service.Create(ctx.Request.Context())
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.Header(SessionHeader, session.SessionID)
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": session})
}

// GetSettings - GET /api/v1/sessions/settings
func (c *SessionController) GetSettings(ctx *gin.Context) {
	settings, err := c.service.GetSettings(ctx.Request.Context(), ctx.GetHeader(SessionHeader))
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// UpdateSettings - PUT /api/v1/sessions/settings
func (c *SessionController) UpdateSettings(ctx *gin.Context) {
	var settings dto.Settings
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido.", "details": err.Error()})
		return
	}
	saved, err := c.service.UpdateSettings(ctx.Request.Context(), ctx.GetHeader(SessionHeader), settings)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": saved})
}
