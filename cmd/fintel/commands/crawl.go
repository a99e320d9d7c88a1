package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/fintel/backend/internal/external/naver"
	"github.com/wonny/fintel/backend/internal/news"
	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/database"
	"github.com/wonny/fintel/backend/pkg/logger"
)

// crawlCmd represents the crawl command
var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "뉴스 수집 실행",
	Long: `키워드별 최신 뉴스를 수집해 오늘 날짜로 저장합니다.

이 명령어는:
- 키워드별 최신 기사 검색
- 최근성/관련성 필터링
- 중복 제거 후 DB 저장 (같은 날짜에는 추가만)

Example:
  go run ./cmd/fintel crawl
  go run ./cmd/fintel crawl --keywords 금리,AI,ETF`,
	RunE: runCrawl,
}

var crawlKeywords []string

func init() {
	rootCmd.AddCommand(crawlCmd)

	crawlCmd.Flags().StringSliceVar(&crawlKeywords, "keywords", nil, "수집 키워드 (기본: NEWS_KEYWORDS 설정)")
}

func runCrawl(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Fintel News Crawl ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.RequireNaver(); err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// 4. Create repository and crawler
	articleRepo := news.NewRepository(db.Pool)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := articleRepo.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap article repository: %w", err)
	}

	naverClient := naver.NewClient(cfg.Naver, log)
	crawler := news.NewCrawler(naverClient, articleRepo, cfg.News, log)

	// 5. Crawl
	keywords := crawlKeywords
	if len(keywords) == 0 {
		keywords = cfg.News.DefaultKeywords
	}
	fmt.Printf("Keywords: %v\n", keywords)

	saved, err := crawler.CrawlToday(ctx, keywords)
	if err != nil {
		return fmt.Errorf("crawl news: %w", err)
	}

	fmt.Printf("\n✅ Crawl completed: %d new articles saved\n", saved)
	return nil
}
