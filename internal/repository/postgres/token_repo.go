package postgres

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

type TokenPostgresRepo struct {
	db *gorm.DB
}

func NewTokenPostgres(db *gorm.DB) *TokenPostgresRepo {
	return &TokenPostgresRepo{db: db}
}

// Upsert stores the token for t.AdminID, overwriting any previous one.
func (r *TokenPostgresRepo) Upsert(t models.AdminPushToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.AdminPushToken
		err := tx.Where("admin_id = ?", t.AdminID).First(&existing).Error
		switch {
		case gorm.IsRecordNotFoundError(err):
			t.UpdatedAt = time.Now().UTC()
			if err := tx.Create(&t).Error; err != nil {
				return errors.Wrap(err, "create push token")
			}
			return nil
		case err != nil:
			return errors.Wrap(err, "lookup push token")
		default:
			err := tx.Model(&existing).Updates(map[string]interface{}{
				"token":      t.Token,
				"updated_at": time.Now().UTC(),
			}).Error
			if err != nil {
				return errors.Wrap(err, "update push token")
			}
			return nil
		}
	})
}

func (r *TokenPostgresRepo) List() ([]models.AdminPushToken, error) {
	var out []models.AdminPushToken
	if err := r.db.Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list push tokens")
	}
	return out, nil
}
