package repository

import (
	"errors"
	"lingua_quest_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.PlaySession) error {
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByID(id uint) (*model.PlaySession, error) {
	var session model.PlaySession
	err := r.DB.First(&session, id).Error
	return &session, err
}

func (r *SessionRepository) FindOwned(id, userID uint) (*model.PlaySession, error) {
	var session model.PlaySession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	return &session, err
}

// FindActive 返回用户未结束的最新会话,没有时返回 nil
func (r *SessionRepository) FindActive(userID uint) (*model.PlaySession, error) {
	var session model.PlaySession
	err := r.DB.Where("user_id = ? AND phase <> ?", userID, model.SessionFinished).
		Order("id DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Update(session *model.PlaySession) error {
	return r.DB.Save(session).Error
}

func (r *SessionRepository) ListByUser(userID uint, limit int) ([]model.PlaySession, error) {
	var sessions []model.PlaySession
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
