package config

import (
	"dashboard/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// SharedConfig contiene la configuración de los middlewares compartidos
type SharedConfig struct {
	EnableCORS     bool
	AllowedOrigins []string // Vacío = permitir cualquier origen
	ExcludedPaths  []string
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{},
		ExcludedPaths:  []string{"/health", "/metrics"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	// Aplicar middleware CORS si está habilitado
	if config.EnableCORS {
		corsOpts := middleware.DefaultCORSOptions()
		corsOpts.AllowedOrigins = config.AllowedOrigins
		router.Use(middleware.CORSMiddleware(corsOpts))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
	// Por ejemplo:
	// - Compresión gzip
	// - Rate limiting
	// - Autenticación/Autorización
}
