package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"habit_streak_backend/internal/config"
	"habit_streak_backend/internal/streak"
	"habit_streak_backend/internal/util"
	"habit_streak_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const blogCacheKey = "blog:latest:%d"

// ContentService serves the day-gated reading content and the external
// blog feed.
type ContentService struct {
	Cfg    *config.Config
	Redis  *redis.Client
	client *http.Client
}

func NewContentService(cfg *config.Config, rdb *redis.Client) *ContentService {
	return &ContentService{
		Cfg:   cfg,
		Redis: rdb,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ArticleList pairs the readable catalog with the next locked entry.
type ArticleList struct {
	Unlocked []streak.Article `json:"unlocked"`
	Next     *streak.Article  `json:"next"`
}

// ArticlesFor returns the articles unlocked at a day count plus the next
// one still locked, nil once the catalog is exhausted.
func (s *ContentService) ArticlesFor(days int) *ArticleList {
	return &ArticleList{
		Unlocked: streak.UnlockedArticles(days),
		Next:     streak.NextArticle(days),
	}
}

// Tip holds one randomly drawn hint together with the rank it was drawn
// for, so clients can render the rank badge.
type Tip struct {
	Rank     streak.Rank        `json:"rank"`
	Category streak.TipCategory `json:"category"`
	Text     string             `json:"text"`
}

// TipFor draws a random tip for the rank the day count maps to. Unknown
// categories yield ok=false rather than an error; the catalog is static.
func (s *ContentService) TipFor(days int, category streak.TipCategory) (*Tip, bool) {
	rank := streak.RankForDays(days)
	text, ok := streak.RandomTip(rank, category)
	if !ok {
		return nil, false
	}
	return &Tip{Rank: rank, Category: category, Text: text}, true
}

// RecommendedFor returns the home-screen shortcut list for a day count.
func (s *ContentService) RecommendedFor(days int) []streak.RecommendedItem {
	return streak.RecommendedFor(days)
}

// BlogPost is the trimmed shape of one external blog entry.
type BlogPost struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Link    string `json:"link"`
	Date    string `json:"date"`
	Image   string `json:"image"`
}

// wpPost mirrors the fields we need of the WordPress REST shape.
type wpPost struct {
	ID    int    `json:"id"`
	Date  string `json:"date"`
	Link  string `json:"link"`
	Title struct {
		Rendered string `json:"rendered"`
	} `json:"title"`
	Excerpt struct {
		Rendered string `json:"rendered"`
	} `json:"excerpt"`
	Embedded struct {
		FeaturedMedia []struct {
			SourceURL string `json:"source_url"`
		} `json:"wp:featuredmedia"`
	} `json:"_embedded"`
}

// LatestBlogPosts proxies the external WordPress feed so clients never
// talk to it directly. Responses are cached in Redis for the configured
// TTL; a cold fetch that fails returns the error rather than stale data.
func (s *ContentService) LatestBlogPosts(ctx context.Context, limit int) ([]BlogPost, error) {
	if limit <= 0 || limit > 20 {
		limit = 5
	}

	cacheKey := fmt.Sprintf(blogCacheKey, limit)
	if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var posts []BlogPost
		if err := json.Unmarshal([]byte(cached), &posts); err == nil {
			return posts, nil
		}
	}

	url := fmt.Sprintf("%s/wp-json/wp/v2/posts?_embed&per_page=%d", strings.TrimRight(s.Cfg.Blog.BaseURL, "/"), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blog feed returned status %d", resp.StatusCode)
	}

	var raw []wpPost
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	posts := make([]BlogPost, 0, len(raw))
	for _, p := range raw {
		post := BlogPost{
			ID:      p.ID,
			Title:   stripHTML(p.Title.Rendered),
			Excerpt: stripHTML(p.Excerpt.Rendered),
			Link:    p.Link,
			Date:    p.Date,
		}
		if len(p.Embedded.FeaturedMedia) > 0 {
			post.Image = p.Embedded.FeaturedMedia[0].SourceURL
		}
		posts = append(posts, post)
	}

	if data, err := json.Marshal(posts); err == nil {
		if err := s.Redis.Set(ctx, cacheKey, data, s.Cfg.Blog.CacheTTL).Err(); err != nil {
			logger.Log.Warn("failed to cache blog posts", zap.Error(err))
		}
	}
	return posts, nil
}

// stripHTML reduces a rendered WordPress fragment to plain text.
func stripHTML(s string) string {
	s = util.Sanitize(s)
	s = strings.ReplaceAll(s, "&hellip;", "…")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.TrimSpace(s)
}
