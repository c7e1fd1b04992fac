package app

import (
	"net/http"

	"medsms-core/internal/app/config"
	"medsms-core/internal/infrastructure/logger"
	securitymw "medsms-core/internal/shared/middleware/security"
	"medsms-core/internal/storage/datacache"

	"github.com/gin-gonic/gin"
)

// NewRouter monta o engine Gin com os middlewares globais e as rotas de
// saúde. As rotas de negócio são registradas pelos módulos via fx.Invoke.
func NewRouter(cfg *config.Config, loggerMw *logger.LoggerMiddleware, cache *datacache.Cache) *gin.Engine {
	configureGinMode(cfg.Environment)

	r := gin.New()

	r.Use(loggerMw.GinLogger())
	r.Use(loggerMw.GinRecovery())
	r.Use(gin.HandlerFunc(securitymw.CORSMiddleware(cfg)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "healthy",
			},
		})
	})

	// Pronto só depois do bootstrap carregar o cache; antes disso as
	// leituras devolveriam coleções vazias
	r.GET("/ready", func(c *gin.Context) {
		if !cache.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"data": gin.H{
					"status": "loading",
				},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "ready",
			},
		})
	})

	return r
}

// configureGinMode configura o modo do Gin conforme o ambiente
func configureGinMode(environment string) {
	switch environment {
	case "docker":
		gin.SetMode(gin.ReleaseMode)
	case "development":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
