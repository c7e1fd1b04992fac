package patients

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"medsms-core/internal/modules/patients/controllers"
	"medsms-core/internal/modules/patients/services"
)

// Module regroupa os providers do domínio Patients
var Module = fx.Options(
	fx.Provide(services.NewPatientService),
	fx.Provide(controllers.NewPatientController),
	fx.Invoke(RegisterPatientRoutes),
)

// RegisterPatientRoutes configura as rotas Gin do cadastro de pacientes
func RegisterPatientRoutes(r *gin.Engine, ctrl *controllers.PatientController) {
	api := r.Group("/api/v1/patients")

	{
		api.GET("", ctrl.List)
		api.POST("", ctrl.Create)
		api.GET("/:id", ctrl.Get)
		api.PUT("/:id", ctrl.Update)
		api.DELETE("/:id", ctrl.Delete)
	}
}
