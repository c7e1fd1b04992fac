package controllers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medsms-core/internal/domain"
	"medsms-core/internal/modules/datamanager/services"
	"medsms-core/internal/shared/apperrors"
)

type DataManagerController struct {
	service *services.DataManagerService
}

func NewDataManagerController(service *services.DataManagerService) *DataManagerController {
	return &DataManagerController{service: service}
}

func fail(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}

// Export - GET /api/v1/data/export
// Devolve o backup completo como download JSON
func (c *DataManagerController) Export(ctx *gin.Context) {
	db, err := c.service.Export(ctx.Request.Context())
	if err != nil {
		fail(ctx, err)
		return
	}
	filename := fmt.Sprintf("medsms_backup_%s.json", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.JSON(http.StatusOK, db)
}

// ImportFull - POST /api/v1/data/import
// Substitui o banco inteiro pelo backup enviado
func (c *DataManagerController) ImportFull(ctx *gin.Context) {
	var db domain.FullDatabase
	if err := ctx.ShouldBindJSON(&db); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo de backup inválido.", "details": err.Error()})
		return
	}
	if err := c.service.ImportFull(ctx.Request.Context(), db); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// ImportCollection - POST /api/v1/data/import/:collection
// Corpo: CSV com cabeçalho na primeira linha
func (c *DataManagerController) ImportCollection(ctx *gin.Context) {
	data, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Não foi possível ler o arquivo enviado.", "details": err.Error()})
		return
	}

	count, err := c.service.ImportCollection(ctx.Request.Context(), ctx.Param("collection"), data)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"imported": count},
		"message": fmt.Sprintf("%d registros foram importados com sucesso para %q.", count, ctx.Param("collection")),
	})
}

// Reset - POST /api/v1/data/reset
// Volta o banco ao estado de demonstração
func (c *DataManagerController) Reset(ctx *gin.Context) {
	if err := c.service.Reset(ctx.Request.Context()); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
