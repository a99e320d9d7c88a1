// Package jobs defines the scheduled jobs.
package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/fintel/backend/internal/news"
	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/logger"
)

// NewsCrawlJob collects the day's news for the default keywords
// ⭐ SSOT: 뉴스 수집 스케줄은 이 Job에서만
type NewsCrawlJob struct {
	crawler *news.Crawler
	config  *config.Config
	logger  *logger.Logger
}

// NewNewsCrawlJob creates a new news crawl job
func NewNewsCrawlJob(crawler *news.Crawler, cfg *config.Config, log *logger.Logger) *NewsCrawlJob {
	return &NewsCrawlJob{
		crawler: crawler,
		config:  cfg,
		logger:  log,
	}
}

// Name returns the job name
func (j *NewsCrawlJob) Name() string {
	return "news_crawl"
}

// Schedule returns the cron schedule (every day at 8 AM KST, before the
// market opens)
func (j *NewsCrawlJob) Schedule() string {
	return "0 0 8 * * *"
}

// Run executes the news crawl with the configured default keywords
func (j *NewsCrawlJob) Run(ctx context.Context) error {
	j.logger.Info("Starting scheduled news crawl")

	saved, err := j.crawler.CrawlToday(ctx, j.config.News.DefaultKeywords)
	if err != nil {
		return fmt.Errorf("crawl news: %w", err)
	}

	j.logger.WithField("saved", saved).Info("Scheduled news crawl completed")
	return nil
}
