package service

import (
	"context"

	"habit_streak_backend/internal/model"
	"habit_streak_backend/internal/streak"
	"habit_streak_backend/pkg/logger"

	"go.uber.org/zap"
)

// Dashboard is the single-call payload behind the home screen.
type Dashboard struct {
	Streak      *StreakStatus            `json:"streak"`
	Articles    *ArticleList             `json:"articles"`
	Recommended []streak.RecommendedItem `json:"recommended"`
	Journals    []model.Journal          `json:"journals"`
	BlogPosts   []BlogPost               `json:"blogPosts"`
}

type DashboardService struct {
	Streak   *StreakService
	Content  *ContentService
	Journals JournalRepo
}

func NewDashboardService(streakSvc *StreakService, content *ContentService, journals JournalRepo) *DashboardService {
	return &DashboardService{
		Streak:   streakSvc,
		Content:  content,
		Journals: journals,
	}
}

// Overview aggregates everything the home screen needs. The blog feed is
// best-effort: an unreachable blog degrades to an empty list instead of
// failing the whole screen.
func (s *DashboardService) Overview(ctx context.Context, userID uint) (*Dashboard, error) {
	status, err := s.Streak.Status(userID)
	if err != nil {
		return nil, err
	}
	days := status.Elapsed.Days

	journals, err := s.Journals.FindRecent(userID, 5)
	if err != nil {
		return nil, err
	}

	posts, err := s.Content.LatestBlogPosts(ctx, 3)
	if err != nil {
		logger.Log.Warn("blog feed unavailable for dashboard", zap.Error(err))
		posts = []BlogPost{}
	}

	return &Dashboard{
		Streak:      status,
		Articles:    s.Content.ArticlesFor(days),
		Recommended: s.Content.RecommendedFor(days),
		Journals:    journals,
		BlogPosts:   posts,
	}, nil
}
