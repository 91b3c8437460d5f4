package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSOptions opciones del middleware CORS
type CORSOptions struct {
	AllowedOrigins []string // Vacío = permitir cualquier origen
	AllowedMethods string
	AllowedHeaders string
}

// DefaultCORSOptions retorna las opciones por defecto
func DefaultCORSOptions() CORSOptions {
	return CORSOptions{
		AllowedOrigins: []string{},
		AllowedMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowedHeaders: "Origin, Content-Type, Accept, Authorization",
	}
}

// CORSMiddleware retorna un middleware que agrega los headers CORS
func CORSMiddleware(opts CORSOptions) gin.HandlerFunc {
	allowed := make(map[string]bool, len(opts.AllowedOrigins))
	for _, origin := range opts.AllowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if len(allowed) == 0 {
			c.Header("Access-Control-Allow-Origin", "*")
		} else if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", opts.AllowedMethods)
		c.Header("Access-Control-Allow-Headers", opts.AllowedHeaders)

		// Responder preflight sin pasar por los handlers
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
