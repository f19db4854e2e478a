package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

type alertStub struct {
	err   error
	calls int
	last  models.Order
}

func (s *alertStub) SendOrderAlert(_ context.Context, o models.Order) error {
	s.calls++
	s.last = o
	return s.err
}

type customerStub struct {
	err   error
	calls int
	to    string
	body  string
}

func (s *customerStub) SendText(_ context.Context, to, body string) error {
	s.calls++
	s.to = to
	s.body = body
	return s.err
}

func orderCreatedPayload(t *testing.T, o models.Order) []byte {
	t.Helper()
	raw, err := json.Marshal(models.NotificationEvent{Type: models.EventOrderCreated, Order: o})
	require.NoError(t, err)
	return raw
}

func TestDispatch_OrderCreated_BothChannels(t *testing.T) {
	push := &alertStub{}
	chat := &alertStub{}
	d := &Dispatcher{Push: push, Chat: chat}

	o := models.Order{OrderID: "ORD1", CustomerName: "A", CustomerPhone: "911"}
	require.NoError(t, d.HandleMessage(context.Background(), orderCreatedPayload(t, o)))

	require.Equal(t, 1, push.calls)
	require.Equal(t, 1, chat.calls)
	require.Equal(t, "ORD1", push.last.OrderID)
}

func TestDispatch_OrderCreated_NilChannelsSkipped(t *testing.T) {
	d := &Dispatcher{}
	o := models.Order{OrderID: "ORD1"}
	require.NoError(t, d.Dispatch(context.Background(), models.NotificationEvent{
		Type:  models.EventOrderCreated,
		Order: o,
	}))
}

func TestDispatch_OrderCreated_OneChannelFails(t *testing.T) {
	push := &alertStub{err: fmt.Errorf("fcm unavailable")}
	chat := &alertStub{}
	d := &Dispatcher{Push: push, Chat: chat}

	err := d.Dispatch(context.Background(), models.NotificationEvent{
		Type:  models.EventOrderCreated,
		Order: models.Order{OrderID: "ORD1"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "fcm unavailable")
	// chat still got its delivery attempt
	require.Equal(t, 1, chat.calls)
}

func TestDispatch_CustomerMessage(t *testing.T) {
	cust := &customerStub{}
	d := &Dispatcher{Customer: cust}

	err := d.Dispatch(context.Background(), models.NotificationEvent{
		Type:    models.EventCustomerMessage,
		Order:   models.Order{OrderID: "ORD1", CustomerPhone: "919812345678"},
		Message: "your order is ready",
	})
	require.NoError(t, err)
	require.Equal(t, "919812345678", cust.to)
	require.Equal(t, "your order is ready", cust.body)
}

func TestDispatch_CustomerMessage_NoPhone(t *testing.T) {
	cust := &customerStub{}
	d := &Dispatcher{Customer: cust}

	err := d.Dispatch(context.Background(), models.NotificationEvent{
		Type:  models.EventCustomerMessage,
		Order: models.Order{OrderID: "ORD1"},
	})
	require.ErrorIs(t, err, ErrNoPhone)
	require.Zero(t, cust.calls)
}

func TestDispatch_UnknownEvent(t *testing.T) {
	d := &Dispatcher{}
	err := d.Dispatch(context.Background(), models.NotificationEvent{Type: "order_shipped"})
	require.ErrorIs(t, err, ErrUnknownEvent)
}

func TestHandleMessage_BadPayload(t *testing.T) {
	d := &Dispatcher{}
	err := d.HandleMessage(context.Background(), []byte("{not json"))
	require.ErrorIs(t, err, ErrDecode)
}

func TestDispatch_ChannelErrorIsRetryable(t *testing.T) {
	cust := &customerStub{err: fmt.Errorf("timeout")}
	d := &Dispatcher{Customer: cust}

	err := d.Dispatch(context.Background(), models.NotificationEvent{
		Type:  models.EventCustomerMessage,
		Order: models.Order{OrderID: "ORD1", CustomerPhone: "919812345678"},
	})
	require.Error(t, err)
	for _, sentinel := range []error{ErrDecode, ErrUnknownEvent, ErrNoPhone} {
		require.False(t, errors.Is(err, sentinel))
	}
}
