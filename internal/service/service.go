package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/repository"
)

// Uploader stores a file buffer remotely and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

// EventPublisher enqueues notification events on the outbox topic.
type EventPublisher interface {
	PublishEvent(ctx context.Context, ev models.NotificationEvent) error
}

type PlaceOrderInput struct {
	CustomerName  string   `validate:"required"`
	CustomerPhone string   `validate:"required"`
	Address       string   `validate:"required"`
	Items         []string `validate:"required,min=1,dive,required"`
	ShopID        string
	ShopName      string
	Note          string
	Prescription  []byte
}

type NotifyInput struct {
	TotalPrice    *float64
	CustomMessage string
}

type Orders interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (models.Order, error)
	ListOrders() ([]models.Order, error)
	CompleteOrder(id uint) error
	CancelOrder(id uint) error
	SetStatus(id uint, status string) error
	NotifyCustomer(ctx context.Context, id uint, in NotifyInput) (models.Order, error)
	DeleteOrder(id uint) error
	SavePushToken(adminID, token string) error
}

type Service struct {
	orders   repository.Orders
	tokens   repository.Tokens
	uploader Uploader
	events   EventPublisher

	v   *validator.Validate
	now func() time.Time
}

// NewService wires the order workflow. uploader and events may be nil when
// the corresponding backend is not configured.
func NewService(repo *repository.Repository, uploader Uploader, events EventPublisher) *Service {
	return &Service{
		orders:   repo.Orders,
		tokens:   repo.Tokens,
		uploader: uploader,
		events:   events,
		v:        validator.New(),
		now:      time.Now,
	}
}
