package repository

import (
	"errors"
	"lingua_quest_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type PerformanceRepository struct {
	DB *gorm.DB
}

func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{DB: db}
}

// Upsert 以 (user_id, activity_id) 为键
func (r *PerformanceRepository) Upsert(record *model.PerformanceRecord) error {
	var existing model.PerformanceRecord
	err := r.DB.Where("user_id = ? AND activity_id = ?", record.UserID, record.ActivityID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(record).Error
	}
	if err != nil {
		return err
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	return r.DB.Save(record).Error
}

func (r *PerformanceRepository) FindByUserActivity(userID uint, activityID string) (*model.PerformanceRecord, error) {
	var record model.PerformanceRecord
	err := r.DB.Where("user_id = ? AND activity_id = ?", userID, activityID).
		First(&record).Error
	return &record, err
}

func (r *PerformanceRepository) ListByUser(userID uint) ([]model.PerformanceRecord, error) {
	var records []model.PerformanceRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("next_review_at ASC").
		Find(&records).Error
	return records, err
}

// ListDue 返回复习日期已到的记录
func (r *PerformanceRepository) ListDue(userID uint, now time.Time) ([]model.PerformanceRecord, error) {
	var records []model.PerformanceRecord
	err := r.DB.Where("user_id = ? AND next_review_at <= ?", userID, now).
		Order("next_review_at ASC").
		Find(&records).Error
	return records, err
}
