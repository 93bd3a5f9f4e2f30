package controller

import (
	"errors"
	"strconv"
	"time"

	"habit_streak_backend/internal/service"
	"habit_streak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	JournalService *service.JournalService
}

func NewJournalController(journalService *service.JournalService) *JournalController {
	return &JournalController{JournalService: journalService}
}

// swagger:model SaveJournalRequest
type SaveJournalRequest struct {
	Date string `json:"date" binding:"required" example:"2025-06-01"`
	Note string `json:"note"`
}

// Save godoc
// @Summary Save a journal entry
// @Description Upserts the note for a calendar day; one entry per user and day
// @Tags journal
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SaveJournalRequest true "Entry payload"
// @Success 200 {object} util.Response "Success"
// @Failure 400 {object} util.Response "Bad date or over-long note"
// @Router /api/journal [put]
func (c *JournalController) Save(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SaveJournalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.JournalService.Save(claims.UserID, req.Date, req.Note); err != nil {
		if errors.Is(err, util.ErrInvalidDate) || errors.Is(err, util.ErrNoteTooLong) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// Month godoc
// @Summary Journal entries for a month
// @Description Lists entries of a calendar month, oldest first
// @Tags journal
// @Produce  json
// @Security ApiKeyAuth
// @Param   year query int false "Year, defaults to current"
// @Param   month query int false "Month 1-12, defaults to current"
// @Success 200 {object} util.Response{data=[]model.Journal} "Success"
// @Failure 400 {object} util.Response "Month out of range"
// @Router /api/journal [get]
func (c *JournalController) Month(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	now := time.Now()
	year, _ := strconv.Atoi(ctx.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(ctx.DefaultQuery("month", strconv.Itoa(int(now.Month()))))

	entries, err := c.JournalService.Month(claims.UserID, year, month)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, entries)
}

// Recent godoc
// @Summary Recent journal entries
// @Description Lists the latest entries, newest first
// @Tags journal
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "Max entries, default 30"
// @Success 200 {object} util.Response{data=[]model.Journal} "Success"
// @Router /api/journal/recent [get]
func (c *JournalController) Recent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "30"))
	entries, err := c.JournalService.Recent(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
