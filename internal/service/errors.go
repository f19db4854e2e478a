package service

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation")
	ErrNoCustomerPhone = errors.New("order has no customerPhone")
)
