package controller

import (
	"lingua_quest_backend/internal/service"
	"lingua_quest_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// MyAchievements godoc
// @Summary 我的成就
// @Description 返回玩家已解锁的成就
// @Tags 成就
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.UserAchievementView} "成功"
// @Router /api/achievements [get]
func (c *AchievementController) MyAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	views, err := c.AchievementService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// Leaderboard godoc
// @Summary XP排行榜
// @Description 返回XP最高的玩家,默认前10名
// @Tags 成就
// @Produce  json
// @Security BearerAuth
// @Param   limit query int false "返回条数,默认10"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry} "成功"
// @Router /api/leaderboard [get]
func (c *AchievementController) Leaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	entries, err := c.AchievementService.Leaderboard(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
