package assistant

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"medsms-core/internal/modules/assistant/controllers"
	"medsms-core/internal/modules/assistant/services"
)

// Module regroupa os providers do domínio Assistant
var Module = fx.Options(
	fx.Provide(services.NewAssistantService),
	fx.Provide(controllers.NewAssistantController),
	fx.Invoke(RegisterAssistantRoutes),
)

// RegisterAssistantRoutes configura as rotas Gin do assistente de IA
func RegisterAssistantRoutes(r *gin.Engine, ctrl *controllers.AssistantController) {
	api := r.Group("/api/v1/assistant")

	{
		api.POST("/chat", ctrl.Chat)
		api.GET("/history", ctrl.GetHistory)
		api.PUT("/history", ctrl.SaveHistory)
		api.POST("/automation", ctrl.Automation)
		api.POST("/swot", ctrl.Swot)
	}
}
