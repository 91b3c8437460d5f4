package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"dashboard/src/dashboard/domain/entity"
)

// PushClient cliente HTTP para el gateway de notificaciones push
// Implementa port.Notifier
type PushClient struct {
	httpClient *http.Client
	gatewayURL string
	pushPath   string
}

// NewPushClient crea una nueva instancia del cliente de push
func NewPushClient() *PushClient {
	gatewayURL := os.Getenv("PUSH_GATEWAY_URL")
	if gatewayURL == "" {
		gatewayURL = "http://localhost:9090" // Default para entorno local
	}

	pushPath := os.Getenv("PUSH_SERVICE_PATH")
	if pushPath == "" {
		pushPath = "/push" // Default
	}

	return &PushClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		gatewayURL: gatewayURL,
		pushPath:   pushPath,
	}
}

// Send envía la notificación al gateway vía POST JSON
func (c *PushClient) Send(ctx context.Context, notification entity.Notification) error {
	url := fmt.Sprintf("%s%s/api/v1/notifications", c.gatewayURL, c.pushPath)

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("error marshaling notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling push gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("push gateway returned status %d: %s", resp.StatusCode, string(payload))
	}

	return nil
}
