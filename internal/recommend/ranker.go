// Package recommend scores catalog products against an investor profile and
// the aggregated theme set.
package recommend

import (
	"math"
	"sort"

	"github.com/wonny/fintel/backend/internal/catalog"
	"github.com/wonny/fintel/backend/internal/profile"
)

// Config defines scoring weights for the composite score
// ⭐ SSOT: 추천 스코어링 파라미터는 이 구조체에서만
type Config struct {
	RiskWeight  float64 // 위험 적합도 비중
	ThemeWeight float64 // 테마 적합도 비중
	TopK        int     // 반환할 추천 수
	Epsilon     float64 // 빈 테마 상품의 0 나눗셈 방지
}

// DefaultConfig returns the standard scoring configuration.
// 위험 60% / 테마 40%
func DefaultConfig() Config {
	return Config{
		RiskWeight:  0.6,
		ThemeWeight: 0.4,
		TopK:        3,
		Epsilon:     1e-5,
	}
}

// Scored pairs a product with its composite score.
// 랭킹 중에만 존재하는 일시적 값
type Scored struct {
	Product  catalog.Product `json:"product"`
	Score    float64         `json:"score"`
	RiskFit  float64         `json:"risk_fit"`
	ThemeFit float64         `json:"theme_fit"`
	Rank     int             `json:"rank"` // 1-based
}

// Ranker ranks catalog products for a profile and theme set.
// 순수 함수: I/O 없음, 동일 입력에 항상 동일 순서
type Ranker struct {
	cfg      Config
	products []catalog.Product
}

// NewRanker creates a ranker over the given product table
func NewRanker(cfg Config, products []catalog.Product) *Ranker {
	return &Ranker{cfg: cfg, products: products}
}

// Rank scores every product and returns the top-K by descending composite
// score. 동점은 카탈로그 순서 우선 (stable sort), 카탈로그가 K보다 작으면
// 있는 만큼만 반환
func (r *Ranker) Rank(p profile.Profile, themeSet []string) []Scored {
	// 프로필 관심 태그와 테마 집합의 합집합으로 매칭
	combined := make(map[string]struct{}, len(p.InterestTags)+len(themeSet))
	for _, tag := range p.InterestTags {
		combined[tag] = struct{}{}
	}
	for _, tag := range themeSet {
		combined[tag] = struct{}{}
	}

	scored := make([]Scored, 0, len(r.products))
	for _, product := range r.products {
		riskFit := 1 - math.Abs(p.RiskScore-product.Risk)
		themeFit := r.themeFit(combined, product.Themes)

		scored = append(scored, Scored{
			Product:  product,
			RiskFit:  riskFit,
			ThemeFit: themeFit,
			Score:    r.cfg.RiskWeight*riskFit + r.cfg.ThemeWeight*themeFit,
		})
	}

	// 내림차순 안정 정렬: 같은 점수는 먼저 등재된 상품이 이긴다
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > r.cfg.TopK {
		scored = scored[:r.cfg.TopK]
	}

	for i := range scored {
		scored[i].Rank = i + 1
	}

	return scored
}

// themeFit measures how much of the PRODUCT's theme set is covered by the
// combined user theme set. 교집합/합집합(IoU)이 아님: 상품 테마가 전부
// 매칭되면 사용자 테마 집합이 아무리 커도 ≈1 — 넓은 관심사를 벌점하지 않는다
func (r *Ranker) themeFit(combined map[string]struct{}, productThemes []string) float64 {
	matched := 0
	for _, theme := range productThemes {
		if _, ok := combined[theme]; ok {
			matched++
		}
	}
	return float64(matched) / (float64(len(productThemes)) + r.cfg.Epsilon)
}
