package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/fintel/backend/internal/catalog"
	"github.com/wonny/fintel/backend/internal/profile"
)

func neutralProfile(risk float64, tags ...string) profile.Profile {
	return profile.Profile{
		RiskScore:    risk,
		Label:        profile.LabelNeutral,
		HorizonYears: 3,
		InterestTags: tags,
	}
}

func TestRankScenario(t *testing.T) {
	// risk_score=0.5, theme={"ETF"}, product {risk:0.5, themes:[자산배분, ETF]}
	// → risk_fit=1.0, theme_fit=1/(2+1e-5), score≈0.7999990
	products := []catalog.Product{
		{Name: "EMP 분산 펀드", Risk: 0.5, Themes: []string{"자산배분", "ETF"}},
	}
	r := NewRanker(DefaultConfig(), products)

	got := r.Rank(neutralProfile(0.5), []string{"ETF"})
	require.Len(t, got, 1)

	assert.InDelta(t, 1.0, got[0].RiskFit, 1e-12)
	assert.InDelta(t, 1.0/(2.0+1e-5), got[0].ThemeFit, 1e-12)
	assert.InDelta(t, 0.7999990, got[0].Score, 1e-6)
	assert.Equal(t, 1, got[0].Rank)
}

func TestRankTopK(t *testing.T) {
	r := NewRanker(DefaultConfig(), catalog.All())

	got := r.Rank(neutralProfile(0.5, "ETF"), []string{"금리"})

	// 출력 길이 = min(K, 카탈로그 크기), 중복 없음
	require.Len(t, got, 3)
	seen := make(map[string]bool)
	for _, s := range got {
		assert.False(t, seen[s.Product.Name], "duplicate product %s", s.Product.Name)
		seen[s.Product.Name] = true
	}

	// 내림차순 정렬
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestRankFewerProductsThanK(t *testing.T) {
	products := []catalog.Product{
		{Name: "A", Risk: 0.5},
		{Name: "B", Risk: 0.3},
	}
	r := NewRanker(DefaultConfig(), products)

	got := r.Rank(neutralProfile(0.5), nil)
	assert.Len(t, got, 2, "fewer than K products → return all, no padding")
}

func TestRankEmptyCatalog(t *testing.T) {
	r := NewRanker(DefaultConfig(), nil)

	got := r.Rank(neutralProfile(0.5), []string{"ETF"})
	assert.Empty(t, got)
}

func TestRankTieBreakByCatalogOrder(t *testing.T) {
	// 동일 risk, 동일(빈) 테마 → 동점: 먼저 등재된 상품이 이긴다
	products := []catalog.Product{
		{Name: "첫번째", Risk: 0.5, Themes: []string{"없는테마"}},
		{Name: "두번째", Risk: 0.5, Themes: []string{"없는테마"}},
		{Name: "세번째", Risk: 0.5, Themes: []string{"없는테마"}},
	}
	r := NewRanker(DefaultConfig(), products)

	got := r.Rank(neutralProfile(0.5), nil)
	require.Len(t, got, 3)
	assert.Equal(t, "첫번째", got[0].Product.Name)
	assert.Equal(t, "두번째", got[1].Product.Name)
	assert.Equal(t, "세번째", got[2].Product.Name)
}

func TestThemeFitFullCoverage(t *testing.T) {
	// 상품 테마 전체가 사용자 테마에 포함되면 theme_fit ≈ 1,
	// 사용자 테마 집합 크기와 무관
	products := []catalog.Product{
		{Name: "P", Risk: 0.5, Themes: []string{"AI", "ETF"}},
	}
	r := NewRanker(DefaultConfig(), products)

	small := r.Rank(neutralProfile(0.5), []string{"AI", "ETF"})
	broad := r.Rank(neutralProfile(0.5), []string{"AI", "ETF", "금리", "채권", "부동산", "환율"})

	want := 2.0 / (2.0 + 1e-5)
	assert.InDelta(t, want, small[0].ThemeFit, 1e-12)
	assert.InDelta(t, want, broad[0].ThemeFit, 1e-12)
}

func TestThemeFitEmptyBothSides(t *testing.T) {
	// 양쪽 테마가 모두 비어 있으면 theme_fit=0, 오류 아님
	products := []catalog.Product{
		{Name: "빈테마", Risk: 0.5, Themes: nil},
	}
	r := NewRanker(DefaultConfig(), products)

	got := r.Rank(neutralProfile(0.5), nil)
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].ThemeFit)
	assert.InDelta(t, 0.6, got[0].Score, 1e-12)
}

func TestRiskFitExtremes(t *testing.T) {
	products := []catalog.Product{
		{Name: "저위험", Risk: 0.0},
		{Name: "고위험", Risk: 1.0},
	}
	r := NewRanker(Config{RiskWeight: 1.0, ThemeWeight: 0.0, TopK: 2, Epsilon: 1e-5}, products)

	got := r.Rank(neutralProfile(0.0), nil)
	require.Len(t, got, 2)

	// risk_score == p.risk → risk_fit = 1 (경계 오류 아님)
	assert.Equal(t, "저위험", got[0].Product.Name)
	assert.InDelta(t, 1.0, got[0].RiskFit, 1e-12)
	// 최대 거리(1.0) → risk_fit = 0
	assert.InDelta(t, 0.0, got[1].RiskFit, 1e-12)
}

func TestRankIdempotent(t *testing.T) {
	r := NewRanker(DefaultConfig(), catalog.All())
	p := neutralProfile(0.4, "ETF", "AI")
	themeSet := []string{"금리", "인프라"}

	first := r.Rank(p, themeSet)
	second := r.Rank(p, themeSet)
	assert.Equal(t, first, second)
}

func TestInterestTagsJoinThemeSet(t *testing.T) {
	// 관심 태그와 테마 집합이 합집합으로 매칭에 쓰이는지 확인
	products := []catalog.Product{
		{Name: "AI 상품", Risk: 0.5, Themes: []string{"AI"}},
	}
	r := NewRanker(DefaultConfig(), products)

	viaTags := r.Rank(neutralProfile(0.5, "AI"), nil)
	viaThemes := r.Rank(neutralProfile(0.5), []string{"AI"})

	assert.Equal(t, viaTags[0].ThemeFit, viaThemes[0].ThemeFit)
	assert.Greater(t, viaTags[0].ThemeFit, 0.9)
}
