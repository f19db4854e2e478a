package notify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

func TestAdminAlertText(t *testing.T) {
	o := models.Order{
		OrderID:       "ORD1700000000000",
		CustomerName:  "Asha",
		CustomerPhone: "919812345678",
		Address:       "12 MG Road",
	}

	text := AdminAlertText(o, "https://admin.example.com")
	require.Contains(t, text, "ORD1700000000000")
	require.Contains(t, text, "Asha (919812345678)")
	require.Contains(t, text, "12 MG Road")
	require.Contains(t, text, "https://admin.example.com")

	// panel link optional
	require.NotContains(t, AdminAlertText(o, ""), "https://")
}

func TestDefaultCustomerMessage(t *testing.T) {
	price := 249.0
	o := models.Order{
		OrderID:      "ORD1",
		CustomerName: "Asha",
		Items:        []string{"paracetamol", "vitamin c"},
		TotalPrice:   &price,
	}

	text := DefaultCustomerMessage(o)
	require.Contains(t, text, "Hi Asha")
	require.Contains(t, text, "ORD1")
	require.Contains(t, text, "paracetamol, vitamin c")
	require.Contains(t, text, "₹249.00")
	require.Contains(t, text, "reply *YES*")
}

func TestDefaultCustomerMessage_NoPrice(t *testing.T) {
	o := models.Order{OrderID: "ORD1", CustomerName: "Asha"}
	require.NotContains(t, DefaultCustomerMessage(o), "Total amount")
}
