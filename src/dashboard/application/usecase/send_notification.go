package usecase

import (
	"context"
	"fmt"
	"log"

	"dashboard/src/dashboard/application/request"
	"dashboard/src/dashboard/domain/entity"
	"dashboard/src/dashboard/domain/port"
)

// SendNotificationUseCase caso de uso para enviar notificaciones push
// HITO D - La capacidad de plataforma llega inyectada como puerto
type SendNotificationUseCase struct {
	notifier port.Notifier
}

// NewSendNotificationUseCase crea una nueva instancia del caso de uso
func NewSendNotificationUseCase(notifier port.Notifier) *SendNotificationUseCase {
	return &SendNotificationUseCase{notifier: notifier}
}

// Execute valida y envía la notificación al gateway de push
func (uc *SendNotificationUseCase) Execute(ctx context.Context, req *request.SendNotificationRequest) error {
	notification, err := entity.NewNotification(req.Title, req.Message, req.ImageURL)
	if err != nil {
		return err
	}

	if err := uc.notifier.Send(ctx, *notification); err != nil {
		return fmt.Errorf("error sending notification: %w", err)
	}

	log.Printf("🔔 Notificación enviada: %s", notification.Title)
	return nil
}
