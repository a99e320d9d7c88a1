package news

import (
	"context"
	"time"

	"github.com/wonny/fintel/backend/internal/external/naver"
	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/logger"
)

// Searcher fetches raw news search results for one keyword
type Searcher interface {
	Search(ctx context.Context, keyword string) []naver.NewsItem
}

// Store persists collected articles
type Store interface {
	SaveNew(ctx context.Context, day time.Time, articles []Article) (int, error)
}

// Crawler collects recent relevant articles per keyword and appends them to
// the day's store
// ⭐ SSOT: 뉴스 수집 파이프라인은 여기서만
type Crawler struct {
	searcher Searcher
	store    Store
	cfg      config.NewsConfig
	logger   *logger.Logger
	now      func() time.Time
}

// NewCrawler creates a news crawler
func NewCrawler(searcher Searcher, store Store, cfg config.NewsConfig, log *logger.Logger) *Crawler {
	return &Crawler{
		searcher: searcher,
		store:    store,
		cfg:      cfg,
		logger:   log,
		now:      time.Now,
	}
}

// Collect fetches, filters and deduplicates articles for the keywords.
// 키워드가 비어 있으면 기본 키워드 사용. 수집 실패는 빈 결과로 흡수된다
func (c *Crawler) Collect(ctx context.Context, keywords []string) []Article {
	if len(keywords) == 0 {
		keywords = c.cfg.DefaultKeywords
	}

	now := c.now()
	var collected []Article

	for _, keyword := range keywords {
		items := c.searcher.Search(ctx, keyword)
		items = naver.FilterRecent(items, c.cfg.RecencyDays, now)
		items = naver.FilterRelevant(items, []string{keyword})

		count := 0
		for _, item := range items {
			if count >= c.cfg.MaxArticles {
				break
			}
			article, ok := FromNewsItem(item, keyword)
			if !ok {
				continue
			}
			collected = append(collected, article)
			count++
		}

		c.logger.WithFields(map[string]interface{}{
			"keyword": keyword,
			"count":   count,
		}).Debug("Keyword collection completed")
	}

	return Dedupe(collected)
}

// CrawlToday collects articles for the keywords and appends new ones under
// today's date. Returns the number of newly stored articles.
func (c *Crawler) CrawlToday(ctx context.Context, keywords []string) (int, error) {
	articles := c.Collect(ctx, keywords)
	if len(articles) == 0 {
		c.logger.Warn("No articles collected")
		return 0, nil
	}

	// 로컬 달력 날짜로 버킷팅. UTC 절삭은 KST 아침 수집을 전날로 넣는다
	now := c.now()
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	saved, err := c.store.SaveNew(ctx, day, articles)
	if err != nil {
		return saved, err
	}

	c.logger.WithFields(map[string]interface{}{
		"collected": len(articles),
		"saved":     saved,
	}).Info("News crawl completed")

	return saved, nil
}
