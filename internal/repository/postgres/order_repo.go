package postgres

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

type OrderPostgresRepo struct {
	db *gorm.DB
}

func NewOrderPostgres(db *gorm.DB) *OrderPostgresRepo {
	return &OrderPostgresRepo{db: db}
}

func (r *OrderPostgresRepo) Create(o *models.Order) error {
	if err := r.db.Create(o).Error; err != nil {
		return errors.Wrap(err, "create order")
	}
	return nil
}

func (r *OrderPostgresRepo) Get(id uint) (models.Order, error) {
	var o models.Order
	q := r.db.Where("id = ?", id).First(&o)
	return o, q.Error
}

// GetAll returns every order, newest creation time first.
func (r *OrderPostgresRepo) GetAll() ([]models.Order, error) {
	var out []models.Order
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return out, nil
}

func (r *OrderPostgresRepo) UpdateStatus(id uint, status models.Status) error {
	err := r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return errors.Wrap(err, "update status")
	}
	return nil
}

func (r *OrderPostgresRepo) Save(o *models.Order) error {
	if err := r.db.Save(o).Error; err != nil {
		return errors.Wrap(err, "save order")
	}
	return nil
}

// Delete removes the row permanently. Deleting an id that does not exist is
// not an error; the caller gets success either way.
func (r *OrderPostgresRepo) Delete(id uint) error {
	if err := r.db.Where("id = ?", id).Delete(&models.Order{}).Error; err != nil {
		return errors.Wrap(err, "delete order")
	}
	return nil
}
