package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/fintel/backend/internal/external/naver"
	"github.com/wonny/fintel/backend/internal/news"
	"github.com/wonny/fintel/backend/internal/scheduler"
	"github.com/wonny/fintel/backend/internal/scheduler/jobs"
	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/database"
	"github.com/wonny/fintel/backend/pkg/logger"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "스케줄러 관리",
	Long: `스케줄러를 시작하거나 작업을 즉시 실행합니다.

등록되는 작업:
- news_crawl: 매일 오전 8시 (기본 키워드 뉴스 수집)

세션 정리는 세션을 보유한 API 프로세스 안에서 돌아간다 (fintel api 참고).

Example:
  go run ./cmd/fintel scheduler start
  go run ./cmd/fintel scheduler run news_crawl`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "스케줄러 시작",
		RunE:  runScheduler,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "특정 작업 즉시 실행",
		Args:  cobra.ExactArgs(1),
		RunE:  runSchedulerJob,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Fintel Scheduler ===")

	sched, cleanup, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer cleanup()

	sched.Start()

	fmt.Println("\n✅ Scheduler started successfully")
	fmt.Println("\nRegistered jobs:")
	fmt.Println("  - news_crawl (매일 08:00)")
	fmt.Println("\nPress Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down scheduler...")
	sched.Stop()
	fmt.Println("Scheduler stopped")

	return nil
}

func runSchedulerJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]
	fmt.Printf("Running job: %s\n", jobName)

	sched, cleanup, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer cleanup()

	if err := sched.RunJob(jobName); err != nil {
		return fmt.Errorf("run job: %w", err)
	}

	// 백그라운드 실행 완료를 이력으로 확인
	fmt.Println("Job started, waiting for completion...")
	for {
		time.Sleep(200 * time.Millisecond)

		history, err := sched.GetJobHistory(jobName)
		if err != nil {
			return err
		}
		if last, ok := history.LastResult(); ok {
			if last.Success {
				fmt.Printf("✅ Job completed in %v\n", last.Duration)
				return nil
			}
			return fmt.Errorf("job failed: %s", last.Error)
		}
	}
}

func initScheduler() (*scheduler.Scheduler, func(), error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.RequireNaver(); err != nil {
		return nil, nil, err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	// 4. Create crawler
	articleRepo := news.NewRepository(db.Pool)
	naverClient := naver.NewClient(cfg.Naver, log)
	crawler := news.NewCrawler(naverClient, articleRepo, cfg.News, log)

	// 5. Create scheduler and register jobs
	sched := scheduler.New(log)
	if err := sched.AddJob(jobs.NewNewsCrawlJob(crawler, cfg, log)); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("register news_crawl: %w", err)
	}

	return sched, db.Close, nil
}
