package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/fintel/backend/internal/advisor"
	"github.com/wonny/fintel/backend/internal/catalog"
	"github.com/wonny/fintel/backend/internal/external/clova"
	"github.com/wonny/fintel/backend/internal/news"
	"github.com/wonny/fintel/backend/internal/profile"
	"github.com/wonny/fintel/backend/internal/recommend"
	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/database"
	"github.com/wonny/fintel/backend/pkg/logger"
	"github.com/wonny/fintel/backend/pkg/redis"
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "맞춤 상품 추천 (CLI)",
	Long: `설문 답변으로 프로필을 만들고 저장된 뉴스 테마와 결합해 상품을 추천합니다.

이 명령어는:
- 답변 가중치 합산으로 성향 분류
- 최신 수집 뉴스의 테마 추출 (CLOVA 설정이 없으면 생략)
- 위험 적합도 60% + 테마 적합도 40%로 상위 3개 추천

Example:
  go run ./cmd/fintel recommend
  go run ./cmd/fintel recommend --answers "고수익이면 감수,고수익,직접 주식,30% 이상,20% 수익/손실" --horizon "5년 이상" --interests AI,ETF`,
	RunE: runRecommend,
}

var (
	recommendAnswers   []string
	recommendHorizon   string
	recommendInterests []string
	recommendKeywords  []string
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringSliceVar(&recommendAnswers, "answers", nil, "점수 문항 답변 5개 (제출 순서대로)")
	recommendCmd.Flags().StringVar(&recommendHorizon, "horizon", "1~5년", "투자 기간 답변")
	recommendCmd.Flags().StringSliceVar(&recommendInterests, "interests", nil, "관심 분야")
	recommendCmd.Flags().StringSliceVar(&recommendKeywords, "keywords", nil, "뉴스 키워드")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Fintel Recommendation ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Build profile from answers
	answers := recommendAnswers
	if len(answers) == 0 {
		// 무응답 기본값: 모두 중간 선택지
		answers = []string{"감수 가능", "균형", "펀드 소액", "10~30%", "10% 수익/5% 손실"}
	}

	classifier := profile.NewClassifier(profile.DefaultConfig())
	result := classifier.Classify(answers)
	p := profile.Build(result, recommendHorizon, recommendInterests)

	fmt.Printf("\n투자 성향: %s (원점수 %+d, 위험 선호도 %.2f)\n", p.Label, result.RawScore, p.RiskScore)
	fmt.Printf("투자 기간: %d년\n", p.HorizonYears)
	if len(p.InterestTags) > 0 {
		fmt.Printf("관심 분야: %v\n", p.InterestTags)
	}

	// 4. Extract themes from stored news (CLOVA 설정이 없으면 생략)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	themeSet := digestThemes(ctx, cfg, log, recommendKeywords)
	if len(themeSet) > 0 {
		fmt.Printf("뉴스 테마: %v\n", themeSet)
	}

	// 5. Rank products
	ranker := recommend.NewRanker(recommend.DefaultConfig(), catalog.All())
	ranked := ranker.Rank(p, themeSet)

	fmt.Println("\n추천 상품:")
	for _, s := range ranked {
		fmt.Printf("  %d. %s (score %.3f, risk_fit %.3f, theme_fit %.3f)\n",
			s.Rank, s.Product.Name, s.Score, s.RiskFit, s.ThemeFit)
		fmt.Printf("     %s\n", s.Product.Description)
	}

	return nil
}

// digestThemes loads the latest stored articles and extracts the combined
// theme set. DB나 CLOVA를 쓸 수 없으면 빈 결과 (추천은 관심 태그만으로 동작)
func digestThemes(ctx context.Context, cfg *config.Config, log *logger.Logger, keywords []string) []string {
	if err := cfg.RequireClova(); err != nil {
		log.WithError(err).Warn("CLOVA not configured, skipping news digest")
		return nil
	}

	db, err := database.New(cfg)
	if err != nil {
		log.WithError(err).Warn("Database unavailable, skipping news digest")
		return nil
	}
	defer db.Close()

	articleRepo := news.NewRepository(db.Pool)
	latest, found, err := articleRepo.LatestDate(ctx)
	if err != nil || !found {
		return nil
	}
	articles, err := articleRepo.GetByDate(ctx, latest)
	if err != nil || len(articles) == 0 {
		return nil
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		redisClient = redis.Disabled()
	}
	defer redisClient.Close()

	clovaClient := clova.NewClient(cfg.Clova, redis.NewCache(redisClient, "fintel"), log)
	adv := advisor.New(clovaClient, log)

	if len(keywords) == 0 {
		keywords = cfg.News.DefaultKeywords
	}
	_, themeSet := adv.Digest(ctx, keywords, articles)
	return themeSet
}
