package config

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API
type APIConfig struct {
	ServiceName string
	Version     string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		ServiceName: "sales-dashboard",
		Version:     "0.0.0",
	}
}

var startTime = time.Now()

// SetupAPIModule configura el módulo API (health check)
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	healthHandler := func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.ServiceName,
			"version": cfg.Version,
			"uptime":  time.Since(startTime).Round(time.Second).String(),
		})
	}

	router.GET("/health", healthHandler)
	v1.GET("/health", healthHandler)

	log.Println("Rutas API disponibles:")
	log.Println("  GET    /health")
	log.Println("  GET    /api/v1/health")
}
