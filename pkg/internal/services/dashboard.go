package services

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/meraki-social/meraki/pkg/internal/cache"
	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
)

type DashboardEntityStats struct {
	Total      int64   `json:"total"`
	LastWeek   int64   `json:"last_week"`
	GrowthRate float64 `json:"growth_rate"`
}

type DashboardMonthStats struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type DashboardStatistics struct {
	Users  DashboardEntityStats `json:"users"`
	Posts  DashboardEntityStats `json:"posts"`
	Groups DashboardEntityStats `json:"groups"`

	WeeklyNewUsers int64                 `json:"weekly_new_users"`
	NewestUsers    []models.Account      `json:"newest_users"`
	PostsPerMonth  []DashboardMonthStats `json:"posts_per_month"`
}

const dashboardCacheKey = "admin-dashboard-statistics"

func countEntityStats(blank any) DashboardEntityStats {
	var stats DashboardEntityStats
	database.C.Model(blank).Count(&stats.Total)
	database.C.Model(blank).
		Where("created_at >= ?", time.Now().AddDate(0, 0, -7)).
		Count(&stats.LastWeek)
	if stats.Total > 0 {
		stats.GrowthRate = float64(stats.LastWeek) / float64(stats.Total) * 100
	}
	return stats
}

// GetDashboardStatistics aggregates the admin landing numbers; the
// result is cached for five minutes since none of it needs to be live.
func GetDashboardStatistics() (DashboardStatistics, error) {
	marshal := marshaler.New(cache.New[any](localCache.S))
	ctx := context.Background()

	if val, err := marshal.Get(ctx, dashboardCacheKey, new(DashboardStatistics)); err == nil {
		return *val.(*DashboardStatistics), nil
	}

	var stats DashboardStatistics
	stats.Users = countEntityStats(&models.Account{})
	stats.Posts = countEntityStats(&models.Post{})
	stats.Groups = countEntityStats(&models.Group{})
	stats.WeeklyNewUsers = stats.Users.LastWeek

	if err := database.C.
		Order("created_at DESC").Limit(10).
		Find(&stats.NewestUsers).Error; err != nil {
		return stats, err
	}

	now := time.Now()
	for offset := 5; offset >= 0; offset-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
			AddDate(0, -offset, 0)
		end := start.AddDate(0, 1, 0)

		var count int64
		if err := database.C.Model(&models.Post{}).
			Where("created_at >= ? AND created_at < ?", start, end).
			Count(&count).Error; err != nil {
			return stats, err
		}
		stats.PostsPerMonth = append(stats.PostsPerMonth, DashboardMonthStats{
			Month: start.Format("2006-01"),
			Count: count,
		})
	}

	_ = marshal.Set(ctx, dashboardCacheKey, stats, store.WithExpiration(5*time.Minute))

	return stats, nil
}
