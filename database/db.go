// Package database manages the sqlite store: schema migration, the fixed
// admin seed, and access to the shared gorm handle.
package database

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"

	"quote-ui/config"
	"quote-ui/database/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminName     = "Admin"
	defaultAdminEmail    = "admin@gmail.com"
	defaultAdminPassword = "admin"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.Author{},
		&model.Quote{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initAdmin seeds the fixed admin account when no admin exists yet.
// Idempotent, safe to run on every start.
func initAdmin() error {
	var count int64
	err := db.Model(model.User{}).
		Where("role = ?", model.RoleAdmin).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	admin := &model.User{
		Name:     defaultAdminName,
		Email:    defaultAdminEmail,
		Password: defaultAdminPassword,
		Role:     model.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("Admin user created with email: %s and password: %s", defaultAdminEmail, defaultAdminPassword)
	return nil
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	return initAdmin()
}

// InitTestDB opens an in-memory store for tests, bypassing the on-disk path.
func InitTestDB() error {
	var err error
	db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return err
	}
	if err := db.Exec("PRAGMA foreign_keys = ON;").Error; err != nil {
		return err
	}
	if err := initModels(); err != nil {
		return err
	}
	return initAdmin()
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	if err := Checkpoint(); err != nil {
		log.Printf("error executing checkpoint: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Checkpoint flushes the WAL into the main database file.
func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
