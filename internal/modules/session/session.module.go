package session

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"medsms-core/internal/modules/session/controllers"
	"medsms-core/internal/modules/session/services"
)

// Module regroupa os providers do domínio Session
var Module = fx.Options(
	fx.Provide(services.NewSessionService),
	fx.Provide(controllers.NewSessionController),
	fx.Invoke(RegisterSessionRoutes),
)

// RegisterSessionRoutes configura as rotas Gin das sessões
func RegisterSessionRoutes(r *gin.Engine, ctrl *controllers.SessionController) {
	api := r.Group("/api/v1/sessions")

	{
		api.POST("", ctrl.Create)
		api.GET("/settings", ctrl.GetSettings)
		api.PUT("/settings", ctrl.UpdateSettings)
	}
}
