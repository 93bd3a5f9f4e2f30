package controller

import (
	"habit_streak_backend/internal/service"
	"habit_streak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StreakController struct {
	StreakService *service.StreakService
}

func NewStreakController(streakService *service.StreakService) *StreakController {
	return &StreakController{StreakService: streakService}
}

// GetStatus godoc
// @Summary Streak status
// @Description Returns the derived streak state, seeding the start on first call
// @Tags streak
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StreakStatus} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/streak [get]
func (c *StreakController) GetStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	status, err := c.StreakService.Status(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, status)
}

// Reset godoc
// @Summary Reset the streak
// @Description Overwrites the streak start with the current server time
// @Tags streak
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/streak/reset [post]
func (c *StreakController) Reset(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	startedAt, err := c.StreakService.Reset(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"startedAt": startedAt})
}
