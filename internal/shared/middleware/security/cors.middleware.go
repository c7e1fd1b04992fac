package security

import (
	"regexp"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"medsms-core/internal/app/config"
)

// CORSHandler tipo específico para Fx
type CORSHandler gin.HandlerFunc

// CORSMiddleware configura as regras CORS do painel da clínica
func CORSMiddleware(appConfig *config.Config) CORSHandler {
	corsConfig := appConfig.GetCORS()

	return CORSHandler(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			// 1. Autorizar as origens de desenvolvimento local
			allowedPattern := regexp.MustCompile(
				`^https?://localhost:(3000|3001|5173|8080)$`,
			)

			if allowedPattern.MatchString(origin) {
				return true
			}

			// 2. Verificar as origens configuradas no ambiente
			for _, allowedOrigin := range corsConfig.AllowedOrigins {
				if origin == allowedOrigin {
					return true
				}
			}

			return false
		},

		// Métodos HTTP autorizados
		AllowMethods: corsConfig.AllowedMethods,

		// Headers autorizados (inclui o header de sessão)
		AllowHeaders: append(corsConfig.AllowedHeaders,
			"X-Session-ID",
			"X-Request-Id"),

		// Headers expostos ao cliente
		ExposeHeaders: []string{
			"Content-Length",
			"X-Request-Id",
			"X-Session-ID",
		},

		// Autorizar credentials (cookies, tokens)
		AllowCredentials: corsConfig.AllowCredentials,

		// Cache da resposta preflight
		MaxAge: time.Duration(corsConfig.MaxAge) * time.Second,
	}))
}
