package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dashboard/src/dashboard/application/request"
	"dashboard/src/dashboard/application/usecase"
)

// NotificationController maneja las peticiones HTTP para notificaciones
// HITO D - Notificaciones push
type NotificationController struct {
	sendNotificationUC *usecase.SendNotificationUseCase
}

// NewNotificationController crea una nueva instancia del controlador
func NewNotificationController(sendNotificationUC *usecase.SendNotificationUseCase) *NotificationController {
	return &NotificationController{
		sendNotificationUC: sendNotificationUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *NotificationController) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.POST("", c.SendNotification)
	}

	log.Println("Rutas Notification disponibles:")
	log.Println("  POST   /api/v1/notifications")
}

// SendNotification envía una notificación push al gateway configurado
func (c *NotificationController) SendNotification(ctx *gin.Context) {
	var req request.SendNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.sendNotificationUC.Execute(ctx.Request.Context(), &req); err != nil {
		respondUseCaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}
