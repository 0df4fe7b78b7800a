package push

import (
	"context"

	"pawtag/internal/domain/service"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

type fcmService struct {
	client *messaging.Client
}

// NewFCMService creates a PushSender backed by Firebase Cloud Messaging,
// for deployments whose clients register raw FCM tokens instead of Expo
// tokens.
func NewFCMService(ctx context.Context, app *fb.App) (service.PushSender, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initialize messaging client")
	}

	return &fcmService{client: client}, nil
}

func (s *fcmService) Send(ctx context.Context, token, title, body string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "send fcm message")
	}

	return nil
}
