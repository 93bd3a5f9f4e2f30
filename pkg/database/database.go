package database

import (
	"fmt"
	"log"

	"habit_streak_backend/internal/config"
	"habit_streak_backend/internal/model"
	"habit_streak_backend/internal/streak"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Release mode skips migration unless forced from the command line.
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.UserSettings{},
		&model.Journal{},
		&model.Room{},
		&model.RoomMember{},
		&model.Message{},
		&model.ResetLog{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed the cohort room table when empty. The ranges must stay
	// contiguous over [0, ∞); the streak package owns the canonical set.
	var roomCount int64
	db.Model(&model.Room{}).Count(&roomCount)
	if roomCount == 0 {
		for _, r := range streak.DefaultRooms() {
			room := r
			db.Create(&room)
		}
		log.Println("Seeded default rooms")
	}

	return db, nil
}
