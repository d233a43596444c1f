package service

import (
	"context"
	"lingua_quest_backend/internal/model"
	"lingua_quest_backend/internal/repository"
	"lingua_quest_backend/internal/util"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
)

// AchievementService 成就查询与XP排行榜
type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	UserRepo        *repository.UserRepository
	Redis           *redis.Client
}

func NewAchievementService(achievementRepo *repository.AchievementRepository, userRepo *repository.UserRepository, rdb *redis.Client) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		UserRepo:        userRepo,
		Redis:           rdb,
	}
}

// UserAchievementView 已解锁成就及定义
type UserAchievementView struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	XP       int    `json:"xp"`
	EarnedAt string `json:"earned_at"`
}

func (s *AchievementService) ListForUser(userID uint) ([]UserAchievementView, error) {
	earned, err := s.AchievementRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	defs, err := s.AchievementRepo.ListDefinitions()
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]model.Achievement, len(defs))
	for _, d := range defs {
		byCode[d.Code] = d
	}

	views := make([]UserAchievementView, 0, len(earned))
	for _, e := range earned {
		v := UserAchievementView{
			Code:     e.Code,
			EarnedAt: e.EarnedAt.Format(util.TimeFormat),
		}
		if d, ok := byCode[e.Code]; ok {
			v.Name = d.Name
			v.Icon = d.Icon
			v.XP = d.XP
		}
		views = append(views, v)
	}
	return views, nil
}

// LeaderboardEntry 排行榜单行
type LeaderboardEntry struct {
	UserID   uint   `json:"user_id"`
	Nickname string `json:"nickname"`
	TotalXP  int    `json:"total_xp"`
	Rank     int    `json:"rank"`
}

// Leaderboard 优先读 Redis ZSET,Redis 不可用时退回数据库
func (s *AchievementService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	if s.Redis != nil {
		entries, err := s.leaderboardFromRedis(ctx, limit)
		if err == nil && len(entries) > 0 {
			return entries, nil
		}
	}
	return s.leaderboardFromDB(limit)
}

func (s *AchievementService) leaderboardFromRedis(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	zs, err := s.Redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		member, _ := z.Member.(string)
		idStr := strings.TrimPrefix(member, "user:")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			continue
		}

		entry := LeaderboardEntry{
			UserID:  uint(id),
			TotalXP: int(z.Score),
			Rank:    i + 1,
		}
		if user, err := s.UserRepo.FindByID(uint(id)); err == nil {
			entry.Nickname = user.Nickname
			if entry.Nickname == "" {
				entry.Nickname = user.Username
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *AchievementService) leaderboardFromDB(limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindTopByXP(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		nickname := u.Nickname
		if nickname == "" {
			nickname = u.Username
		}
		entries = append(entries, LeaderboardEntry{
			UserID:   u.ID,
			Nickname: nickname,
			TotalXP:  u.TotalXP,
			Rank:     i + 1,
		})
	}
	return entries, nil
}
