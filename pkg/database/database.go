package database

import (
	"fmt"
	"lingua_quest_backend/internal/catalog"
	"lingua_quest_backend/internal/config"
	"lingua_quest_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.PlaySession{},
		&model.ResponseAssessment{},
		&model.Phase2Progress{},
		&model.RemedialAttempt{},
		&model.PerformanceRecord{},
		&model.Achievement{},
		&model.UserAchievement{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 成就定义播种,已有记录时跳过
	var count int64
	db.Model(&model.Achievement{}).Count(&count)
	if count == 0 {
		for _, def := range catalog.Default().Achievements {
			achievement := &model.Achievement{
				Code: def.Code,
				Name: def.Name,
				Icon: def.Icon,
				XP:   def.XP,
			}
			db.Create(achievement)
		}
	}

	return db, nil
}
