package controller

import (
	"strconv"

	"habit_streak_backend/internal/service"
	"habit_streak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController bundles the moderation endpoints; every route behind it
// requires the admin role.
type AdminController struct {
	UserService   *service.UserService
	ChatService   *service.ChatService
	StreakService *service.StreakService
}

func NewAdminController(userService *service.UserService, chatService *service.ChatService, streakService *service.StreakService) *AdminController {
	return &AdminController{
		UserService:   userService,
		ChatService:   chatService,
		StreakService: streakService,
	}
}

// ListUsers godoc
// @Summary List users
// @Description Paginated user listing with optional name/email search
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   search query string false "Substring of display name or email"
// @Param   page query int false "Page, default 1"
// @Param   limit query int false "Page size, default 20"
// @Success 200 {object} util.Response{data=util.PageResponse} "Success"
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.UserService.Search(ctx.Query("search"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// swagger:model ModerationRequest
type ModerationRequest struct {
	Value bool `json:"value"`
}

// SetBanned godoc
// @Summary Ban or unban a user
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "User ID"
// @Param   body body ModerationRequest true "true to ban, false to lift"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "User not found"
// @Router /api/admin/users/{id}/ban [put]
func (c *AdminController) SetBanned(ctx *gin.Context) {
	c.moderateUser(ctx, c.UserService.SetBanned)
}

// SetMuted godoc
// @Summary Mute or unmute a user in chat
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "User ID"
// @Param   body body ModerationRequest true "true to mute, false to lift"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "User not found"
// @Router /api/admin/users/{id}/mute [put]
func (c *AdminController) SetMuted(ctx *gin.Context) {
	c.moderateUser(ctx, c.UserService.SetMuted)
}

func (c *AdminController) moderateUser(ctx *gin.Context, apply func(uint, bool) error) {
	userID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req ModerationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := apply(uint(userID), req.Value); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// HideMessage godoc
// @Summary Hide or unhide a chat message
// @Description Soft-hides a message; the row is kept for audit
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Message ID"
// @Param   body body ModerationRequest true "true to hide, false to restore"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Message not found"
// @Router /api/admin/messages/{id}/hide [put]
func (c *AdminController) HideMessage(ctx *gin.Context) {
	var req ModerationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ChatService.Hide(ctx.Param("id"), req.Value); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// RoomHistory godoc
// @Summary Room history including hidden messages
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Room ID"
// @Param   limit query int false "Max messages, default 50"
// @Success 200 {object} util.Response{data=[]model.Message} "Success"
// @Router /api/admin/rooms/{id}/messages [get]
func (c *AdminController) RoomHistory(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	messages, err := c.ChatService.History(ctx.Param("id"), limit, true)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, messages)
}

// ResetHistory godoc
// @Summary Streak reset history of a user
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "User ID"
// @Param   limit query int false "Max entries, default 20"
// @Success 200 {object} util.Response{data=[]model.ResetLog} "Success"
// @Router /api/admin/users/{id}/resets [get]
func (c *AdminController) ResetHistory(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	logs, err := c.StreakService.ResetHistory(uint(userID), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, logs)
}
