package models

import (
	"time"

	"github.com/lib/pq"
)

// Order is a customer's delivery request. OrderID is the public identifier
// ("ORD" + creation timestamp); ID is the internal database reference used
// by the admin endpoints.
type Order struct {
	ID               uint           `json:"id"               gorm:"primary_key"`
	OrderID          string         `json:"orderId"          gorm:"type:varchar(32);unique_index;not null" validate:"required"`
	CustomerName     string         `json:"customerName"     gorm:"not null" validate:"required"`
	CustomerPhone    string         `json:"customerPhone"    gorm:"not null" validate:"required"` // international digits, no leading +
	Address          string         `json:"address"          gorm:"not null" validate:"required"`
	ShopID           string         `json:"shopId,omitempty"`
	ShopName         string         `json:"shopName,omitempty"`
	Items            pq.StringArray `json:"items"            gorm:"type:text[]" validate:"required,min=1"`
	Note             string         `json:"note,omitempty"`
	PrescriptionFile *string        `json:"prescriptionFile"`
	TotalPrice       *float64       `json:"totalPrice,omitempty"`
	Status           Status         `json:"status"           gorm:"type:varchar(24);default:'pending'"`
	CreatedAt        time.Time      `json:"createdAt"`
}
