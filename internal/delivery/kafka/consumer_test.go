package kafka

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/notify"
)

func TestBackoff(t *testing.T) {
	base := 200 * time.Millisecond

	require.Equal(t, time.Duration(0), backoff(0, base))
	require.Equal(t, 200*time.Millisecond, backoff(1, base))
	require.Equal(t, 400*time.Millisecond, backoff(2, base))
	require.Equal(t, 800*time.Millisecond, backoff(3, base))
	require.Equal(t, 5*time.Second, backoff(10, base), "backoff is capped")
}

func TestTrimErr(t *testing.T) {
	require.Equal(t, "", trimErr(nil))
	require.Equal(t, "boom", trimErr(fmt.Errorf("boom")))

	long := strings.Repeat("x", 1500)
	require.Len(t, trimErr(fmt.Errorf("%s", long)), 1000)
}

func TestIsNonRetryable(t *testing.T) {
	for _, sentinel := range []error{notify.ErrDecode, notify.ErrUnknownEvent, notify.ErrNoPhone} {
		require.True(t, isNonRetryable(fmt.Errorf("wrap: %w", sentinel)))
	}
	require.False(t, isNonRetryable(fmt.Errorf("telegram timeout")))
}

func TestNewConsumerDefaults(t *testing.T) {
	c := NewConsumer(Config{
		Brokers:    []string{"localhost:9092"},
		GroupID:    "notifier",
		Topic:      "order-notifications",
		MaxRetries: -3,
	}, nil)
	defer c.Close()

	require.Equal(t, 0, c.cfg.MaxRetries)
	require.Equal(t, 200*time.Millisecond, c.cfg.BaseBackoff)
	require.Nil(t, c.dlq, "no DLQ topic means no DLQ writer")
}

func TestNewConsumerDLQWriter(t *testing.T) {
	c := NewConsumer(Config{
		Brokers: []string{"localhost:9092"},
		GroupID: "notifier",
		Topic:   "order-notifications",
		DLQ:     "order-notifications-dlq",
	}, nil)
	defer c.Close()

	require.NotNil(t, c.dlq)
	require.Equal(t, "order-notifications-dlq", c.dlq.Topic)
}
