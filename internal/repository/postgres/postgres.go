package postgres

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/pkg/errors"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	DbName   string
	SslMode  string
}

func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.DbName, cfg.Password, cfg.SslMode)

	db, err := gorm.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "postgres open")
	}
	if err := db.DB().Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "postgres ping")
	}
	return db, nil
}

// ConnectURL connects using a postgres:// connection string.
func ConnectURL(url string) (*gorm.DB, error) {
	db, err := gorm.Open("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "postgres open")
	}
	if err := db.DB().Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "postgres ping")
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Order{}, &models.AdminPushToken{}).Error; err != nil {
		return errors.Wrap(err, "automigrate")
	}
	return nil
}
