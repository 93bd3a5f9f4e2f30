package controller

import (
	"errors"
	"strconv"

	"habit_streak_backend/internal/service"
	"habit_streak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService   *service.ChatService
	StreakService *service.StreakService
	Hub           *service.ChatHub
}

func NewChatController(chatService *service.ChatService, streakService *service.StreakService, hub *service.ChatHub) *ChatController {
	return &ChatController{
		ChatService:   chatService,
		StreakService: streakService,
		Hub:           hub,
	}
}

// JoinRoom godoc
// @Summary Resolve and join the cohort room
// @Description Joins the room matching the current streak day, leaving any previous room
// @Tags chat
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Room} "Success"
// @Failure 404 {object} util.Response "No room covers the day count"
// @Router /api/chat/room [post]
func (ctrl *ChatController) JoinRoom(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	days, err := ctrl.StreakService.ElapsedDays(claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	room, err := ctrl.ChatService.JoinForDays(claims.UserID, days)
	if err != nil {
		if errors.Is(err, util.ErrRoomNotFound) {
			util.NotFound(c)
		} else {
			util.LogInternalError(c, err)
		}
		return
	}
	util.Success(c, room)
}

// History godoc
// @Summary Room message history
// @Description Latest messages of a room in chronological order, hidden ones excluded
// @Tags chat
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Room ID"
// @Param   limit query int false "Max messages, default 50"
// @Success 200 {object} util.Response{data=[]model.Message} "Success"
// @Router /api/chat/rooms/{id}/messages [get]
func (ctrl *ChatController) History(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	messages, err := ctrl.ChatService.History(c.Param("id"), limit, false)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, messages)
}

// swagger:model SendMessageRequest
type SendMessageRequest struct {
	Content     string `json:"content" binding:"required"`
	ClientMsgID string `json:"clientMsgId" example:"uuid-123"`
}

// Send godoc
// @Summary Send a message
// @Description Stores a message and pushes it to the room, echoing clientMsgId
// @Tags chat
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Room ID"
// @Param   body body SendMessageRequest true "Message payload"
// @Success 201 {object} util.Response{data=model.Message} "Created"
// @Failure 400 {object} util.Response "Empty or over-long message"
// @Failure 403 {object} util.Response "Muted, banned or not a member"
// @Router /api/chat/rooms/{id}/messages [post]
func (ctrl *ChatController) Send(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	roomID := c.Param("id")
	msg, err := ctrl.ChatService.Send(claims.UserID, roomID, req.Content, req.ClientMsgID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMessageEmpty), errors.Is(err, util.ErrMessageTooLong):
			util.BadRequest(c, err.Error())
		case errors.Is(err, util.ErrUserMuted), errors.Is(err, util.ErrUserBanned), errors.Is(err, util.ErrNotRoomMember):
			util.Error(c, 403, err.Error())
		default:
			util.LogInternalError(c, err)
		}
		return
	}

	ctrl.Hub.PushToRoom(roomID, service.WSMessage{
		Type: "NEW_MESSAGE",
		Data: msg,
	})

	util.Created(c, msg)
}

// HandleWS godoc
// @Summary WebSocket connection
// @Description Upgrades to a WebSocket scoped to the caller's current room
// @Tags chat
// @Security ApiKeyAuth
// @Param   token query string true "JWT token"
// @Success 101 {string} string "Switching Protocols"
// @Router /api/chat/ws [get]
func (ctrl *ChatController) HandleWS(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	days, err := ctrl.StreakService.ElapsedDays(claims.UserID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	room, err := ctrl.ChatService.JoinForDays(claims.UserID, days)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	service.ServeWs(ctrl.Hub, c.Writer, c.Request, claims.UserID, room.ID)
}
