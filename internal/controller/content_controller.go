package controller

import (
	"strconv"

	"habit_streak_backend/internal/service"
	"habit_streak_backend/internal/streak"
	"habit_streak_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
	StreakService  *service.StreakService
}

func NewContentController(contentService *service.ContentService, streakService *service.StreakService) *ContentController {
	return &ContentController{
		ContentService: contentService,
		StreakService:  streakService,
	}
}

func (c *ContentController) elapsedDays(ctx *gin.Context) (int, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	days, err := c.StreakService.ElapsedDays(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return 0, false
	}
	return days, true
}

// Articles godoc
// @Summary Unlocked articles
// @Description Articles readable at the current streak day plus the next locked one
// @Tags content
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ArticleList} "Success"
// @Router /api/content/articles [get]
func (c *ContentController) Articles(ctx *gin.Context) {
	days, ok := c.elapsedDays(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.ContentService.ArticlesFor(days))
}

// Recommended godoc
// @Summary Recommended shortcuts
// @Description Home-screen shortcut list for the current streak day
// @Tags content
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]streak.RecommendedItem} "Success"
// @Router /api/content/recommended [get]
func (c *ContentController) Recommended(ctx *gin.Context) {
	days, ok := c.elapsedDays(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.ContentService.RecommendedFor(days))
}

// Tip godoc
// @Summary Random tip
// @Description Draws a random tip for the rank the streak day maps to
// @Tags content
// @Produce  json
// @Security ApiKeyAuth
// @Param   category query string true "motivation, relax or detox"
// @Success 200 {object} util.Response{data=service.Tip} "Success"
// @Failure 400 {object} util.Response "Unknown category"
// @Router /api/content/tip [get]
func (c *ContentController) Tip(ctx *gin.Context) {
	days, ok := c.elapsedDays(ctx)
	if !ok {
		return
	}

	category := streak.TipCategory(ctx.Query("category"))
	tip, ok := c.ContentService.TipFor(days, category)
	if !ok {
		util.BadRequest(ctx, "unknown tip category")
		return
	}
	util.Success(ctx, tip)
}

// BlogPosts godoc
// @Summary Latest blog posts
// @Description Proxies the companion blog feed, cached server-side
// @Tags content
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "Max posts, default 5"
// @Success 200 {object} util.Response{data=[]service.BlogPost} "Success"
// @Failure 502 {object} util.Response "Blog feed unavailable"
// @Router /api/content/blog [get]
func (c *ContentController) BlogPosts(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
	posts, err := c.ContentService.LatestBlogPosts(ctx, limit)
	if err != nil {
		util.Error(ctx, 502, "blog feed unavailable")
		return
	}
	util.Success(ctx, posts)
}
