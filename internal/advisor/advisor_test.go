package advisor

import (
	"context"
	"strings"
	"testing"

	"github.com/wonny/fintel/backend/internal/catalog"
	"github.com/wonny/fintel/backend/internal/external/clova"
	"github.com/wonny/fintel/backend/internal/news"
	"github.com/wonny/fintel/backend/internal/profile"
	"github.com/wonny/fintel/backend/internal/recommend"
	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/logger"
)

func testLogger() *logger.Logger {
	cfg := &config.Config{Env: "development", LogLevel: "error", LogFormat: "json"}
	return logger.New(cfg)
}

type fakeLLM struct {
	themes   map[string][]string
	prompts  []string
	answer   string
	failures bool
}

func (f *fakeLLM) Summarize(_ context.Context, text string, maxLength int) string {
	if f.failures {
		return clova.Truncate(text, maxLength)
	}
	return "요약: " + text
}

func (f *fakeLLM) Classify(_ context.Context, text string) clova.Classification {
	if f.failures {
		return clova.Classification{}
	}
	return clova.Classification{Themes: f.themes[text]}
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) string {
	f.prompts = append(f.prompts, prompt)
	return f.answer
}

func TestDigest(t *testing.T) {
	llm := &fakeLLM{themes: map[string][]string{
		"금리 인상\n한은 발표": {"금리", "채권"},
		"반도체 호황":        {"AI"},
	}}

	adv := New(llm, testLogger())
	articles := []news.Article{
		{Title: "금리 인상", Description: "한은 발표"},
		{Title: "반도체 호황"},
	}

	enriched, combined := adv.Digest(context.Background(), []string{"ETF"}, articles)

	if enriched[0].Summary != "요약: 금리 인상\n한은 발표" {
		t.Errorf("Summary = %q", enriched[0].Summary)
	}
	if len(enriched[0].Themes) != 2 {
		t.Errorf("Themes = %v", enriched[0].Themes)
	}

	// 키워드 ∪ 기사 테마, 정렬됨
	want := []string{"AI", "ETF", "금리", "채권"}
	if len(combined) != len(want) {
		t.Fatalf("combined = %v, want %v", combined, want)
	}
	for i := range want {
		if combined[i] != want[i] {
			t.Errorf("combined[%d] = %q, want %q", i, combined[i], want[i])
		}
	}
}

// 실패하는 LLM에서도 다이제스트는 항상 결과를 낸다
func TestDigestFailSoft(t *testing.T) {
	adv := New(&fakeLLM{failures: true}, testLogger())
	articles := []news.Article{{Title: "금리 인상"}}

	enriched, combined := adv.Digest(context.Background(), []string{"금리"}, articles)

	if enriched[0].Summary != "금리 인상" {
		t.Errorf("Summary = %q, want truncated original", enriched[0].Summary)
	}
	if len(enriched[0].Themes) != 0 {
		t.Errorf("Themes = %v, want empty", enriched[0].Themes)
	}
	if len(combined) != 1 || combined[0] != "금리" {
		t.Errorf("combined = %v, want just the keyword", combined)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := profile.Profile{
		Label:        profile.LabelAggressive,
		RiskScore:    0.85,
		HorizonYears: 5,
		InterestTags: []string{"AI", "반도체"},
	}
	ranked := []recommend.Scored{
		{Rank: 1, Product: catalog.Product{Name: "Pre-IPO 펀드", Description: "비상장 주식 투자"}},
		{Rank: 2, Product: catalog.Product{Name: "AI 스마트베타", Description: "AI 팩터 전략"}},
	}

	prompt := BuildPrompt(p, ranked, "지금 들어가도 될까요?")

	for _, fragment := range []string{
		"공격형", "0.85", "5년", "AI, 반도체",
		"1. Pre-IPO 펀드", "2. AI 스마트베타", "지금 들어가도 될까요?",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q:\n%s", fragment, prompt)
		}
	}
}

func TestBuildPromptWithoutRecommendations(t *testing.T) {
	prompt := BuildPrompt(profile.Profile{Label: profile.LabelNeutral, HorizonYears: 3}, nil, "질문")
	if strings.Contains(prompt, "[추천 상품]") {
		t.Error("empty ranking must omit the recommendation section")
	}
}

func TestAsk(t *testing.T) {
	llm := &fakeLLM{answer: "분산 투자를 권합니다."}
	adv := New(llm, testLogger())

	got := adv.Ask(context.Background(), profile.Profile{Label: profile.LabelNeutral}, nil, "조언해줘")
	if got != "분산 투자를 권합니다." {
		t.Errorf("Ask = %q", got)
	}
	if len(llm.prompts) != 1 || !strings.Contains(llm.prompts[0], "조언해줘") {
		t.Errorf("prompt not forwarded: %v", llm.prompts)
	}
}
