package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
)

const notificationsEndpoint = "/api/v1/notifications"

// Notifier implements ports.Notifier over the backend REST API.
type Notifier struct {
	client *Client
}

// NewNotifier creates a REST-backed notifier.
func NewNotifier(client *Client) *Notifier {
	return &Notifier{client: client}
}

// notificationPayload is the POST body for a notification intent.
type notificationPayload struct {
	RecipientType string `json:"recipient_type"`
	TemplateID    string `json:"template_id"`
	RelatedID     string `json:"related_id"`
}

// Dispatch delivers a single notification intent.
func (n *Notifier) Dispatch(ctx context.Context, intent domain.Intent) error {
	body, err := json.Marshal(notificationPayload{
		RecipientType: string(intent.Audience),
		TemplateID:    intent.TemplateID,
		RelatedID:     intent.ApplicationID,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	url := n.client.baseURL + notificationsEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := n.client.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errorFromResponse(resp)
	}
	return nil
}
