package repository

import (
	"github.com/jinzhu/gorm"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/repository/postgres"
)

type Orders interface {
	Create(o *models.Order) error
	Get(id uint) (models.Order, error)
	GetAll() ([]models.Order, error)
	UpdateStatus(id uint, status models.Status) error
	Save(o *models.Order) error
	Delete(id uint) error
}

type Tokens interface {
	Upsert(t models.AdminPushToken) error
	List() ([]models.AdminPushToken, error)
}

type Repository struct {
	Orders
	Tokens
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Orders: postgres.NewOrderPostgres(db),
		Tokens: postgres.NewTokenPostgres(db),
	}
}
