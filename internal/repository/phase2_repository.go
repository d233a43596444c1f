package repository

import (
	"errors"
	"lingua_quest_backend/internal/model"

	"gorm.io/gorm"
)

type Phase2Repository struct {
	DB *gorm.DB
}

func NewPhase2Repository(db *gorm.DB) *Phase2Repository {
	return &Phase2Repository{DB: db}
}

// UpsertProgress 以 (user_id, session_id, step_id) 为键
func (r *Phase2Repository) UpsertProgress(progress *model.Phase2Progress) error {
	var existing model.Phase2Progress
	err := r.DB.Where("user_id = ? AND session_id = ? AND step_id = ?",
		progress.UserID, progress.SessionID, progress.StepID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(progress).Error
	}
	if err != nil {
		return err
	}

	progress.ID = existing.ID
	progress.CreatedAt = existing.CreatedAt
	return r.DB.Save(progress).Error
}

func (r *Phase2Repository) FindProgress(userID, sessionID uint, stepID string) (*model.Phase2Progress, error) {
	var progress model.Phase2Progress
	err := r.DB.Where("user_id = ? AND session_id = ? AND step_id = ?", userID, sessionID, stepID).
		First(&progress).Error
	return &progress, err
}

func (r *Phase2Repository) ListProgress(userID, sessionID uint) ([]model.Phase2Progress, error) {
	var progress []model.Phase2Progress
	err := r.DB.Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("id ASC").
		Find(&progress).Error
	return progress, err
}

// UpsertAttempt 以 (user_id, session_id, step_id, activity_id) 为键,重试时覆盖得分并累加次数
func (r *Phase2Repository) UpsertAttempt(attempt *model.RemedialAttempt) error {
	var existing model.RemedialAttempt
	err := r.DB.Where("user_id = ? AND session_id = ? AND step_id = ? AND activity_id = ?",
		attempt.UserID, attempt.SessionID, attempt.StepID, attempt.ActivityID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		attempt.Attempts = 1
		return r.DB.Create(attempt).Error
	}
	if err != nil {
		return err
	}

	attempt.ID = existing.ID
	attempt.CreatedAt = existing.CreatedAt
	attempt.Attempts = existing.Attempts + 1
	return r.DB.Save(attempt).Error
}

func (r *Phase2Repository) ListAttempts(userID, sessionID uint, stepID string) ([]model.RemedialAttempt, error) {
	var attempts []model.RemedialAttempt
	err := r.DB.Where("user_id = ? AND session_id = ? AND step_id = ?", userID, sessionID, stepID).
		Order("id ASC").
		Find(&attempts).Error
	return attempts, err
}
