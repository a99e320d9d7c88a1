package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/fintel/backend/internal/advisor"
	"github.com/wonny/fintel/backend/internal/api"
	"github.com/wonny/fintel/backend/internal/api/handlers"
	"github.com/wonny/fintel/backend/internal/catalog"
	"github.com/wonny/fintel/backend/internal/external/clova"
	"github.com/wonny/fintel/backend/internal/external/naver"
	"github.com/wonny/fintel/backend/internal/news"
	"github.com/wonny/fintel/backend/internal/profile"
	"github.com/wonny/fintel/backend/internal/recommend"
	"github.com/wonny/fintel/backend/internal/scheduler"
	"github.com/wonny/fintel/backend/internal/scheduler/jobs"
	"github.com/wonny/fintel/backend/internal/session"
	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/database"
	"github.com/wonny/fintel/backend/pkg/logger"
	"github.com/wonny/fintel/backend/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- 설문/프로필/추천/챗 엔드포인트 제공
- 뉴스 조회 및 수집 트리거 제공

Endpoints:
  GET  /health                - Health check
  GET  /api/questionnaire     - 설문 문항 조회
  POST /api/profile           - 설문 제출 및 프로필 생성
  GET  /api/profile           - 세션 프로필 조회
  GET  /api/news              - 수집된 뉴스 조회
  POST /api/news/crawl        - 뉴스 수집 트리거
  GET  /api/recommendations   - 맞춤 상품 추천
  POST /api/chat              - 어드바이저 질의
  GET  /ws/chat               - 어드바이저 WebSocket

Example:
  go run ./cmd/fintel api
  go run ./cmd/fintel api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "8080", "API 서버 포트")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Fintel API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.RequireNaver(); err != nil {
		return err
	}
	if err := cfg.RequireClova(); err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	log.Info("Connected to database")

	// 4. Connect to Redis (optional, LLM 결과 캐시)
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	llmCache := redis.NewCache(redisClient, "fintel")

	// 5. Create external API clients
	naverClient := naver.NewClient(cfg.Naver, log)
	clovaClient := clova.NewClient(cfg.Clova, llmCache, log)

	// 6. Create article repository and crawler
	articleRepo := news.NewRepository(db.Pool)
	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelBootstrap()
	if err := articleRepo.Bootstrap(bootstrapCtx); err != nil {
		return fmt.Errorf("bootstrap article repository: %w", err)
	}
	crawler := news.NewCrawler(naverClient, articleRepo, cfg.News, log)

	// 7. Create core components
	classifier := profile.NewClassifier(profile.DefaultConfig())
	ranker := recommend.NewRanker(recommend.DefaultConfig(), catalog.All())
	sessions := session.NewStore()
	adv := advisor.New(clovaClient, log)

	// 8. Start in-process scheduler (세션은 이 프로세스의 메모리에 있다 —
	// 정리 작업도 같은 프로세스에서 돌아야 한다)
	sched := scheduler.New(log)
	if err := sched.AddJob(jobs.NewSessionCleanupJob(sessions, log)); err != nil {
		return fmt.Errorf("register session_cleanup: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	// 9. Create handlers
	profileHandler := handlers.NewProfileHandler(classifier, sessions, log)
	newsHandler := handlers.NewNewsHandler(articleRepo, crawler, adv, log)
	recommendHandler := handlers.NewRecommendHandler(sessions, articleRepo, adv, ranker, log)
	chatHandler := handlers.NewChatHandler(sessions, adv, ranker, log)

	// 10. Create router
	router := api.NewRouter(profileHandler, newsHandler, recommendHandler, chatHandler, log)

	// 11. Create server
	server := api.New(cfg, log, router)

	// 12. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  GET  /api/questionnaire")
	fmt.Println("  POST /api/profile")
	fmt.Println("  GET  /api/news")
	fmt.Println("  POST /api/news/crawl")
	fmt.Println("  GET  /api/recommendations")
	fmt.Println("  POST /api/chat")
	fmt.Println("  GET  /ws/chat")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
