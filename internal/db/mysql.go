package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"groupchat/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate sets up join tables and runs schema migrations for all models.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.Group{}, "Members", &model.GroupMember{}); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}
	return db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Message{},
		&model.MessageLike{},
	)
}
