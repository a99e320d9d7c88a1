// Package advisor turns profiles, news digests and product rankings into
// LLM prompts and answers.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/wonny/fintel/backend/internal/external/clova"
	"github.com/wonny/fintel/backend/internal/news"
	"github.com/wonny/fintel/backend/internal/profile"
	"github.com/wonny/fintel/backend/internal/recommend"
	"github.com/wonny/fintel/backend/internal/themes"
	"github.com/wonny/fintel/backend/pkg/logger"
)

// 기사 요약 최대 길이 (한글 기준)
const summaryMaxLength = 150

// LLM is the language-model surface the advisor depends on
type LLM interface {
	Summarize(ctx context.Context, text string, maxLength int) string
	Classify(ctx context.Context, text string) clova.Classification
	Complete(ctx context.Context, prompt string) string
}

// Advisor builds prompts and orchestrates LLM calls
// ⭐ SSOT: 프롬프트 구성은 여기서만
type Advisor struct {
	llm    LLM
	logger *logger.Logger
}

// New creates an advisor
func New(llm LLM, log *logger.Logger) *Advisor {
	return &Advisor{llm: llm, logger: log}
}

// Digest summarizes and classifies each article, returning the enriched
// articles and the aggregated theme set.
// 개별 기사 처리 실패는 건너뛰지 않는다 — 요약은 잘린 원문, 분류는 빈 테마로 흡수
func (a *Advisor) Digest(ctx context.Context, keywords []string, articles []news.Article) ([]news.Article, []string) {
	articleThemes := make([][]string, 0, len(articles))

	out := make([]news.Article, len(articles))
	for i, article := range articles {
		text := article.Title
		if article.Description != "" {
			text = article.Title + "\n" + article.Description
		}

		article.Summary = a.llm.Summarize(ctx, text, summaryMaxLength)
		article.Themes = a.llm.Classify(ctx, text).Themes

		out[i] = article
		articleThemes = append(articleThemes, article.Themes)
	}

	combined := themes.Aggregate(keywords, articleThemes)

	a.logger.WithFields(map[string]interface{}{
		"articles": len(articles),
		"themes":   len(combined),
	}).Debug("News digest completed")

	return out, combined
}

// BuildPrompt composes the advisor prompt from the user's profile, the
// current recommendations and their question
func BuildPrompt(p profile.Profile, ranked []recommend.Scored, question string) string {
	var b strings.Builder

	b.WriteString("[투자자 정보]\n")
	fmt.Fprintf(&b, "- 투자 성향: %s (위험 선호도 %.2f)\n", p.Label, p.RiskScore)
	fmt.Fprintf(&b, "- 투자 기간: %d년\n", p.HorizonYears)
	if len(p.InterestTags) > 0 {
		fmt.Fprintf(&b, "- 관심 분야: %s\n", strings.Join(p.InterestTags, ", "))
	}

	if len(ranked) > 0 {
		b.WriteString("\n[추천 상품]\n")
		for _, s := range ranked {
			fmt.Fprintf(&b, "%d. %s — %s\n", s.Rank, s.Product.Name, s.Product.Description)
		}
	}

	b.WriteString("\n[질문]\n")
	b.WriteString(question)
	b.WriteString("\n\n위 투자자에게 맞춰 한국어로 답변해주세요.")

	return b.String()
}

// Ask answers a free-text question in the context of the user's profile and
// recommendations. LLM 실패 시에도 사용자에게 보여줄 문자열이 반환된다
func (a *Advisor) Ask(ctx context.Context, p profile.Profile, ranked []recommend.Scored, question string) string {
	return a.llm.Complete(ctx, BuildPrompt(p, ranked, question))
}
