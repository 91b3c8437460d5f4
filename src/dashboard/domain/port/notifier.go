package port

import (
	"context"

	"dashboard/src/dashboard/domain/entity"
)

// Notifier define el contrato para enviar notificaciones push
// La capacidad de plataforma se inyecta como puerto: el core nunca
// depende del runtime de notificaciones
type Notifier interface {
	// Send envía una notificación al gateway de push
	Send(ctx context.Context, notification entity.Notification) error
}
