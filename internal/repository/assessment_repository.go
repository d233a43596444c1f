package repository

import (
	"errors"
	"lingua_quest_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// Upsert 以 (session_id, question_id) 为键,重交覆盖旧记录
func (r *AssessmentRepository) Upsert(record *model.ResponseAssessment) error {
	var existing model.ResponseAssessment
	err := r.DB.Where("session_id = ? AND question_id = ?", record.SessionID, record.QuestionID).
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

func (r *AssessmentRepository) FindBySessionQuestion(sessionID uint, questionID string) (*model.ResponseAssessment, error) {
	var record model.ResponseAssessment
	err := r.DB.Where("session_id = ? AND question_id = ?", sessionID, questionID).
		First(&record).Error
	return &record, err
}

func (r *AssessmentRepository) ListBySession(sessionID uint) ([]model.ResponseAssessment, error) {
	var records []model.ResponseAssessment
	err := r.DB.Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&records).Error
	return records, err
}

// DeleteByQuestions 硬删指定题目的作答记录,软删会占住
// (session_id, question_id) 唯一索引挡掉重答
func (r *AssessmentRepository) DeleteByQuestions(sessionID uint, questionIDs []string) error {
	if len(questionIDs) == 0 {
		return nil
	}
	return r.DB.Unscoped().
		Where("session_id = ? AND question_id IN ?", sessionID, questionIDs).
		Delete(&model.ResponseAssessment{}).Error
}
