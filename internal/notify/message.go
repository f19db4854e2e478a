package notify

import (
	"fmt"
	"strings"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

// AdminAlertText is the message sent to the admin chat when an order arrives.
func AdminAlertText(o models.Order, panelURL string) string {
	var b strings.Builder
	b.WriteString("New order arrived!\n")
	fmt.Fprintf(&b, "Order: %s\n", o.OrderID)
	fmt.Fprintf(&b, "Customer: %s (%s)\n", o.CustomerName, o.CustomerPhone)
	fmt.Fprintf(&b, "Address: %s\n", o.Address)
	if panelURL != "" {
		b.WriteString("\n")
		b.WriteString(panelURL)
	}
	return b.String()
}

// DefaultCustomerMessage is the confirmation text sent to the customer when
// no custom message is supplied.
func DefaultCustomerMessage(o models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n", o.CustomerName)
	fmt.Fprintf(&b, "We received your order (ID: %s).\n", o.OrderID)
	if len(o.Items) > 0 {
		fmt.Fprintf(&b, "Items: %s\n", strings.Join(o.Items, ", "))
	}
	if o.TotalPrice != nil {
		fmt.Fprintf(&b, "Total amount: ₹%.2f\n", *o.TotalPrice)
	}
	b.WriteString("Please reply *YES* on WhatsApp to confirm your order.")
	return b.String()
}
