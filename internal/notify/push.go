package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

// TokenSource supplies the registered admin push tokens.
type TokenSource interface {
	List() ([]models.AdminPushToken, error)
}

// FirebasePush sends a push notification about a new order to every
// registered admin device.
type FirebasePush struct {
	client *messaging.Client
	tokens TokenSource
}

func NewFirebasePush(ctx context.Context, serviceAccountJSON string, tokens TokenSource) (*FirebasePush, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	if err != nil {
		return nil, errors.Wrap(err, "firebase init")
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "firebase messaging")
	}
	return &FirebasePush{client: client, tokens: tokens}, nil
}

func (p *FirebasePush) SendOrderAlert(ctx context.Context, o models.Order) error {
	tokens, err := p.tokens.List()
	if err != nil {
		return errors.Wrap(err, "list push tokens")
	}
	if len(tokens) == 0 {
		logrus.WithField("orderId", o.OrderID).Info("no admin push tokens registered, push skipped")
		return nil
	}

	var failed int
	for _, t := range tokens {
		msg := &messaging.Message{
			Token: t.Token,
			Notification: &messaging.Notification{
				Title: "New Order Received",
				Body:  fmt.Sprintf("Order from %s", o.CustomerName),
			},
			Android: &messaging.AndroidConfig{Priority: "high"},
			Webpush: &messaging.WebpushConfig{
				Headers: map[string]string{"Urgency": "high"},
			},
		}
		if _, err := p.client.Send(ctx, msg); err != nil {
			failed++
			logrus.WithError(err).WithFields(logrus.Fields{
				"orderId": o.OrderID,
				"adminId": t.AdminID,
			}).Error("push send failed")
		}
	}
	if failed == len(tokens) {
		return fmt.Errorf("push failed for all %d tokens", failed)
	}
	return nil
}
