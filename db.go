package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/samedayramps/samedayramps-application/entity"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupDatabase() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
			envOr("DB_HOST", "localhost"),
			envOr("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			envOr("DB_NAME", "samedayramps"),
			envOr("DB_PORT", "5432"),
			envOr("DB_SSLMODE", "disable"),
		)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}

	// uuid_generate_v4 defaults on the primary keys need this extension.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		logrus.WithError(err).Warn("failed to ensure uuid-ossp extension")
	}

	if err := db.AutoMigrate(
		&entity.AdminUser{},
		&entity.Customer{},
		&entity.Quote{},
		&entity.Rental{},
		&entity.Settings{},
		&entity.Communication{},
		&entity.Task{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}
	return db
}
