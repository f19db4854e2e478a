package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/notify"
)

const orderIDPrefix = "ORD"

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		fmt.Fprintf(&b, "%s: %s; ", fe.Field(), fe.Tag())
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

// PlaceOrder validates the input, uploads the prescription if present,
// persists the order and enqueues the admin notification event. An upload
// failure aborts the whole operation; no order row is written without its
// attachment.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (models.Order, error) {
	if err := s.v.Struct(in); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return models.Order{}, errors.Wrap(ErrValidation, humanizeValidationErrors(verrs))
		}
		return models.Order{}, errors.Wrap(ErrValidation, err.Error())
	}

	now := s.now().UTC()

	var prescriptionURL *string
	if len(in.Prescription) > 0 {
		if s.uploader == nil {
			return models.Order{}, fmt.Errorf("media storage is not configured")
		}
		url, err := s.uploader.Upload(ctx, in.Prescription)
		if err != nil {
			return models.Order{}, errors.Wrap(err, "upload prescription")
		}
		prescriptionURL = &url
	}

	order := models.Order{
		OrderID:          orderIDPrefix + strconv.FormatInt(now.UnixMilli(), 10),
		CustomerName:     in.CustomerName,
		CustomerPhone:    in.CustomerPhone,
		Address:          in.Address,
		ShopID:           in.ShopID,
		ShopName:         in.ShopName,
		Items:            in.Items,
		Note:             in.Note,
		PrescriptionFile: prescriptionURL,
		Status:           models.StatusPending,
		CreatedAt:        now,
	}

	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, err
	}
	logrus.WithField("orderId", order.OrderID).Info("order saved")

	s.publish(ctx, models.NotificationEvent{
		Type:  models.EventOrderCreated,
		Order: order,
	})

	return order, nil
}

func (s *Service) ListOrders() ([]models.Order, error) {
	return s.orders.GetAll()
}

func (s *Service) CompleteOrder(id uint) error {
	return s.SetStatus(id, string(models.StatusCompleted))
}

func (s *Service) CancelOrder(id uint) error {
	return s.SetStatus(id, string(models.StatusCancelled))
}

// SetStatus moves the order to the requested state if the transition table
// allows it.
func (s *Service) SetStatus(id uint, status string) error {
	st := models.Status(status)
	if !st.Valid() {
		return errors.Wrapf(ErrValidation, "unknown status %q", status)
	}

	order, err := s.orders.Get(id)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !order.Status.CanTransition(st) {
		return errors.Wrapf(ErrValidation, "cannot move order from %q to %q", order.Status, st)
	}
	return s.orders.UpdateStatus(id, st)
}

// NotifyCustomer optionally records the total price, moves a fresh order to
// pending_confirmation and enqueues the WhatsApp message for the customer.
func (s *Service) NotifyCustomer(ctx context.Context, id uint, in NotifyInput) (models.Order, error) {
	order, err := s.orders.Get(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	if order.CustomerPhone == "" {
		return models.Order{}, ErrNoCustomerPhone
	}

	if in.TotalPrice != nil {
		order.TotalPrice = in.TotalPrice
	}
	if order.Status == "" || order.Status == models.StatusPending {
		order.Status = models.StatusPendingConfirmation
	}
	if err := s.orders.Save(&order); err != nil {
		return models.Order{}, err
	}

	msg := in.CustomMessage
	if msg == "" {
		msg = notify.DefaultCustomerMessage(order)
	}

	s.publish(ctx, models.NotificationEvent{
		Type:    models.EventCustomerMessage,
		Order:   order,
		Message: msg,
	})

	return order, nil
}

// DeleteOrder removes the record permanently. There is no existence check;
// deleting an unknown id still reports success.
func (s *Service) DeleteOrder(id uint) error {
	return s.orders.Delete(id)
}

func (s *Service) SavePushToken(adminID, token string) error {
	if token == "" {
		return errors.Wrap(ErrValidation, "token is required")
	}
	if adminID == "" {
		adminID = "default"
	}
	return s.tokens.Upsert(models.AdminPushToken{AdminID: adminID, Token: token})
}

// publish enqueues best-effort: a broker failure is logged and swallowed so
// the triggering request still succeeds.
func (s *Service) publish(ctx context.Context, ev models.NotificationEvent) {
	if s.events == nil {
		logrus.WithField("type", ev.Type).Warn("notification outbox not configured, event dropped")
		return
	}
	if err := s.events.PublishEvent(ctx, ev); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"type":    ev.Type,
			"orderId": ev.Order.OrderID,
		}).Error("enqueue notification event")
	}
}
