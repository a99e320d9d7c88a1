package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/fintel/backend/internal/advisor"
	"github.com/wonny/fintel/backend/internal/catalog"
	"github.com/wonny/fintel/backend/internal/external/clova"
	"github.com/wonny/fintel/backend/internal/profile"
	"github.com/wonny/fintel/backend/internal/recommend"
	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/logger"
	"github.com/wonny/fintel/backend/pkg/redis"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "어드바이저에게 질문 (CLI)",
	Long: `프로필 컨텍스트를 담아 어드바이저 LLM에 질문합니다.

Example:
  go run ./cmd/fintel chat "채권 비중을 늘려야 할까요?"
  go run ./cmd/fintel chat --answers "절대 불가,안정,예금·적금,10% 이하,3% 안정" "원금 보장 상품만 추천해줘"`,
	Args: cobra.ExactArgs(1),
	RunE: runChat,
}

var (
	chatAnswers   []string
	chatHorizon   string
	chatInterests []string
)

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringSliceVar(&chatAnswers, "answers", nil, "점수 문항 답변 5개 (제출 순서대로)")
	chatCmd.Flags().StringVar(&chatHorizon, "horizon", "1~5년", "투자 기간 답변")
	chatCmd.Flags().StringSliceVar(&chatInterests, "interests", nil, "관심 분야")
}

func runChat(cmd *cobra.Command, args []string) error {
	question := args[0]

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.RequireClova(); err != nil {
		return err
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Build profile
	answers := chatAnswers
	if len(answers) == 0 {
		answers = []string{"감수 가능", "균형", "펀드 소액", "10~30%", "10% 수익/5% 손실"}
	}

	classifier := profile.NewClassifier(profile.DefaultConfig())
	p := profile.Build(classifier.Classify(answers), chatHorizon, chatInterests)

	// 4. Rank products for prompt context
	ranker := recommend.NewRanker(recommend.DefaultConfig(), catalog.All())
	ranked := ranker.Rank(p, nil)

	// 5. Ask (Redis 없이도 동작 — 캐시만 비활성)
	redisClient, err := redis.New(cfg)
	if err != nil {
		redisClient = redis.Disabled()
	}
	defer redisClient.Close()

	clovaClient := clova.NewClient(cfg.Clova, redis.NewCache(redisClient, "fintel"), log)
	adv := advisor.New(clovaClient, log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Printf("[%s] %s\n\n", p.Label, question)
	fmt.Println(adv.Ask(ctx, p, ranked, question))
	return nil
}
