package entity

import "strings"

// Notification representa una notificación push a mostrar al operador
type Notification struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	ImageURL string `json:"image_url,omitempty"` // Imagen opcional
}

// NewNotification crea una notificación validando el mensaje
func NewNotification(title, message, imageURL string) (*Notification, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrNotificationMessageRequired
	}
	if strings.TrimSpace(title) == "" {
		title = "Dashboard de Ventas"
	}
	return &Notification{
		Title:    title,
		Message:  strings.TrimSpace(message),
		ImageURL: imageURL,
	}, nil
}
