package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

// Errors the consumer must not retry: the payload will never become valid.
var (
	ErrDecode       = fmt.Errorf("decode notification event")
	ErrUnknownEvent = fmt.Errorf("unknown notification event type")
	ErrNoPhone      = fmt.Errorf("order has no customer phone")
)

type PushSender interface {
	SendOrderAlert(ctx context.Context, o models.Order) error
}

type ChatSender interface {
	SendOrderAlert(ctx context.Context, o models.Order) error
}

type CustomerSender interface {
	SendText(ctx context.Context, to, body string) error
}

// Dispatcher fans a notification event out to its channels. A nil channel
// means the credentials were not configured; it is skipped with a log line
// and never treated as a failure.
type Dispatcher struct {
	Push     PushSender
	Chat     ChatSender
	Customer CustomerSender
}

// HandleMessage decodes an outbox payload and dispatches it. Channel errors
// propagate so the consumer can retry delivery.
func (d *Dispatcher) HandleMessage(ctx context.Context, payload []byte) error {
	var ev models.NotificationEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return d.Dispatch(ctx, ev)
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev models.NotificationEvent) error {
	log := logrus.WithFields(logrus.Fields{"type": ev.Type, "orderId": ev.Order.OrderID})

	switch ev.Type {
	case models.EventOrderCreated:
		var pushErr, chatErr error

		if d.Push == nil {
			log.Info("push channel not configured, skipped")
		} else if pushErr = d.Push.SendOrderAlert(ctx, ev.Order); pushErr == nil {
			log.Info("admin push sent")
		}

		if d.Chat == nil {
			log.Info("chat channel not configured, skipped")
		} else if chatErr = d.Chat.SendOrderAlert(ctx, ev.Order); chatErr == nil {
			log.Info("admin chat alert sent")
		}

		if pushErr != nil || chatErr != nil {
			return fmt.Errorf("order_created dispatch: push=%v chat=%v", pushErr, chatErr)
		}
		return nil

	case models.EventCustomerMessage:
		if ev.Order.CustomerPhone == "" {
			return fmt.Errorf("%w: %s", ErrNoPhone, ev.Order.OrderID)
		}
		if d.Customer == nil {
			log.Info("customer channel not configured, skipped")
			return nil
		}
		if err := d.Customer.SendText(ctx, ev.Order.CustomerPhone, ev.Message); err != nil {
			return fmt.Errorf("customer message dispatch: %w", err)
		}
		log.Info("customer message sent")
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}
