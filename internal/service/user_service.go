package service

import (
	"lingua_quest_backend/internal/model"
	"lingua_quest_backend/internal/repository"
)

type UserService struct {
	UserRepo    *repository.UserRepository
	SessionRepo *repository.SessionRepository
}

func NewUserService(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
	}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

// ProfileUpdate 可编辑的个人资料字段
type ProfileUpdate struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Nickname != "" {
		user.Nickname = update.Nickname
	}
	if update.Avatar != "" {
		user.Avatar = update.Avatar
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SessionHistory(userID uint, limit int) ([]model.PlaySession, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.SessionRepo.ListByUser(userID, limit)
}
