package models

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// All returns every persisted model, in dependency order so AutoMigrate can
// create foreign keys as it goes.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Team{},
		&Client{},
		&Project{},
		&Task{},
		&SubTask{},
		&Tag{},
		&TimeEntry{},
		&Comment{},
		&Notification{},
		&PasswordResetCode{},
	}
}

// Migrate applies the schema for all models.
func Migrate(db *gorm.DB) error {
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})
	return migrateDB.AutoMigrate(All()...)
}

// GenerateModels runs the gorm/gen query-helper generation against a live
// database. Invoked from main when GENERATE_MODELS=true; the process exits
// after generation.
func GenerateModels(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	verbose := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 10 * time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)
	db = db.Session(&gorm.Session{
		Logger:                 verbose,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)
	g.ApplyBasic(
		User{},
		Team{},
		Client{},
		Project{},
		Task{},
		SubTask{},
		Tag{},
		TimeEntry{},
		Comment{},
		Notification{},
		PasswordResetCode{},
	)

	fmt.Println("Migrating models...")
	if err := Migrate(db); err != nil {
		fmt.Printf("Error during models migration: %v\n", err)
		os.Exit(1)
	}

	g.Execute()
	fmt.Println("Model generation complete!")
}
