package reports

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"medsms-core/internal/modules/reports/controllers"
	"medsms-core/internal/modules/reports/services"
)

// Module regroupa os providers do domínio Reports
var Module = fx.Options(
	fx.Provide(services.NewReportsService),
	fx.Provide(controllers.NewReportsController),
	fx.Invoke(RegisterReportsRoutes),
)

// RegisterReportsRoutes configura as rotas Gin do painel analítico
func RegisterReportsRoutes(r *gin.Engine, ctrl *controllers.ReportsController) {
	api := r.Group("/api/v1/reports")

	{
		api.GET("/dashboard", ctrl.Dashboard)
	}
}
