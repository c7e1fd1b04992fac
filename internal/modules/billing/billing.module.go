package billing

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"medsms-core/internal/modules/billing/controllers"
	"medsms-core/internal/modules/billing/services"
)

// Module regroupa os providers do domínio Billing
var Module = fx.Options(
	fx.Provide(services.NewBillingService),
	fx.Provide(controllers.NewBillingController),
	fx.Invoke(RegisterBillingRoutes),
)

// RegisterBillingRoutes configura as rotas Gin do faturamento
func RegisterBillingRoutes(r *gin.Engine, ctrl *controllers.BillingController) {
	api := r.Group("/api/v1")

	{
		api.GET("/price-tables", ctrl.ListTables)
		api.POST("/price-tables", ctrl.SaveTable)
		api.DELETE("/price-tables/:id", ctrl.DeleteTable)
		api.GET("/price-tables/:id/entries", ctrl.ListTableEntries)
		api.PUT("/price-tables/:id/entries", ctrl.UpdateEntries)

		api.GET("/price-table-entries", ctrl.ListEntries)
	}
}
