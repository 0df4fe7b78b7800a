// Package push implements the push delivery relays.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"pawtag/internal/domain/service"

	"github.com/pkg/errors"
)

// DefaultExpoEndpoint is the public Expo push relay.
const DefaultExpoEndpoint = "https://exp.host/--/api/v2/push/send"

// expoMessage is the request body accepted by the Expo push API.
type expoMessage struct {
	To    string `json:"to"`
	Sound string `json:"sound"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type expoService struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewExpoService creates a PushSender that relays messages through the Expo
// push API. Delivery is fire-and-forget: the relay's per-message receipts
// are not consumed.
func NewExpoService(endpoint string, logger *slog.Logger) service.PushSender {
	if endpoint == "" {
		endpoint = DefaultExpoEndpoint
	}

	return &expoService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

func (s *expoService) Send(ctx context.Context, token, title, body string) error {
	payload, err := json.Marshal(expoMessage{
		To:    token,
		Sound: "default",
		Title: title,
		Body:  body,
	})
	if err != nil {
		return errors.Wrap(err, "marshal expo message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "create expo request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send expo request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		// Drain a short error body for diagnostics only.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Warn("expo relay rejected message",
			slog.Int("status", resp.StatusCode),
			slog.String("response", string(snippet)),
		)

		return errors.Errorf("expo relay returned status %d", resp.StatusCode)
	}

	return nil
}
