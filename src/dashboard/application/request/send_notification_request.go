package request

// SendNotificationRequest request para enviar una notificación push
// HITO D - Notificaciones
type SendNotificationRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message" binding:"required"`
	ImageURL string `json:"image_url"`
}
