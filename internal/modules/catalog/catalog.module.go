package catalog

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"medsms-core/internal/modules/catalog/controllers"
	"medsms-core/internal/modules/catalog/services"
)

// Module regroupa os providers do domínio Catalog
var Module = fx.Options(
	fx.Provide(services.NewCatalogService),
	fx.Provide(controllers.NewCatalogController),
	fx.Invoke(RegisterCatalogRoutes),
)

// RegisterCatalogRoutes configura as rotas Gin dos cadastros simples
func RegisterCatalogRoutes(r *gin.Engine, ctrl *controllers.CatalogController) {
	api := r.Group("/api/v1/catalog")

	{
		api.GET("/doctors", ctrl.ListDoctors)
		api.POST("/doctors", ctrl.SaveDoctor)
		api.DELETE("/doctors/:id", ctrl.DeleteDoctor)

		api.GET("/locations", ctrl.ListLocations)
		api.POST("/locations", ctrl.SaveLocation)
		api.DELETE("/locations/:id", ctrl.DeleteLocation)

		api.GET("/municipalities", ctrl.ListMunicipalities)
		api.POST("/municipalities", ctrl.SaveMunicipality)
		api.DELETE("/municipalities/:id", ctrl.DeleteMunicipality)

		api.GET("/procedure-types", ctrl.ListProcedureTypes)
		api.POST("/procedure-types", ctrl.SaveProcedureType)
		api.DELETE("/procedure-types/:id", ctrl.DeleteProcedureType)

		api.GET("/occurrences", ctrl.ListOccurrences)
		api.POST("/occurrences", ctrl.SaveOccurrence)
		api.DELETE("/occurrences/:id", ctrl.DeleteOccurrence)

		api.GET("/procedures", ctrl.ListProcedures)
		api.POST("/procedures", ctrl.SaveProcedure)
		api.DELETE("/procedures/:id", ctrl.DeleteProcedure)

		api.GET("/campaigns", ctrl.ListCampaigns)
		api.POST("/campaigns", ctrl.SaveCampaign)
		api.DELETE("/campaigns/:id", ctrl.DeleteCampaign)
	}
}
