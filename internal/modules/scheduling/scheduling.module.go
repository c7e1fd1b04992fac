package scheduling

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"medsms-core/internal/modules/scheduling/controllers"
	"medsms-core/internal/modules/scheduling/services"
)

// Module regroupa os providers do domínio Scheduling
var Module = fx.Options(
	fx.Provide(services.NewSchedulingService),
	fx.Provide(controllers.NewSchedulingController),
	fx.Invoke(RegisterSchedulingRoutes),
)

// RegisterSchedulingRoutes configura as rotas Gin dos agendamentos
func RegisterSchedulingRoutes(r *gin.Engine, ctrl *controllers.SchedulingController) {
	api := r.Group("/api/v1/appointments")

	{
		api.GET("", ctrl.List)
		api.POST("", ctrl.Create)
		api.GET("/:id", ctrl.Get)
		api.PUT("/:id", ctrl.Update)
		api.DELETE("/:id", ctrl.Delete)

		api.PATCH("/:id/status", ctrl.UpdateStatus)
		api.PATCH("/:id/occurrence", ctrl.UpdateOccurrence)
		api.POST("/:id/cancellation", ctrl.Cancel)
	}
}
