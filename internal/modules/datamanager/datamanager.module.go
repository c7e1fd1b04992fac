package datamanager

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"medsms-core/internal/modules/datamanager/controllers"
	"medsms-core/internal/modules/datamanager/services"
)

// Module regroupa os providers do domínio DataManager
var Module = fx.Options(
	fx.Provide(services.NewDataManagerService),
	fx.Provide(controllers.NewDataManagerController),
	fx.Invoke(RegisterDataManagerRoutes),
)

// RegisterDataManagerRoutes configura as rotas Gin de backup e importação
func RegisterDataManagerRoutes(r *gin.Engine, ctrl *controllers.DataManagerController) {
	api := r.Group("/api/v1/database")

	{
		api.GET("/export", ctrl.Export)
		api.POST("/import", ctrl.ImportFull)
		api.POST("/import/:collection", ctrl.ImportCollection)
		api.POST("/reset", ctrl.Reset)
	}
}
