// Package db handles database connections and migrations
package db

import (
	"errors"
	"fmt"
	"stralshund/dog-api/internal/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the configured database and migrates every table the
// app needs. The storage backend is picked with storage.type
func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch viper.GetString("storage.type") {
	case "postgres":
		dialector = postgres.Open(viper.GetString("storage.dsn"))
	case "sqlite":
		dialector = sqlite.Open(viper.GetString("storage.dsn"))
	default:
		return nil, errors.New("invalid storage type provided")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = db.AutoMigrate(
		model.User{},
		model.Dog{},
		model.Route{},
		model.Meetup{},
		model.MeetupParticipant{},
		model.DogSpot{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
