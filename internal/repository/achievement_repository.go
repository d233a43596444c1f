package repository

import (
	"errors"
	"lingua_quest_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) ListDefinitions() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Find(&achievements).Error
	return achievements, err
}

// Grant 幂等解锁,已有记录时返回 false
func (r *AchievementRepository) Grant(userID uint, code string, sessionID uint) (bool, error) {
	var existing model.UserAchievement
	err := r.DB.Where("user_id = ? AND code = ?", userID, code).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	record := &model.UserAchievement{
		UserID:    userID,
		Code:      code,
		SessionID: sessionID,
		EarnedAt:  time.Now(),
	}
	return true, r.DB.Create(record).Error
}

func (r *AchievementRepository) ListByUser(userID uint) ([]model.UserAchievement, error) {
	var achievements []model.UserAchievement
	err := r.DB.Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&achievements).Error
	return achievements, err
}
