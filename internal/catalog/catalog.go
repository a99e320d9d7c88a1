// Package catalog holds the static investment product table.
package catalog

// Product is a catalog entry. 읽기 전용: 런타임 생성/수정/삭제 없음
type Product struct {
	Name        string   `json:"name"` // unique identifier
	Risk        float64  `json:"risk"` // 0.0(안정) ~ 1.0(공격)
	Themes      []string `json:"themes"`
	Description string   `json:"description"`
}

// products is the process-wide constant table, in catalog order.
// 랭킹 동점 시 이 순서가 우선순위가 된다
var products = []Product{
	{Name: "EMP 분산 펀드", Risk: 0.5, Themes: []string{"자산배분", "ETF"}, Description: "여러 ETF로 글로벌 분산투자"},
	{Name: "TDF 2045", Risk: 0.3, Themes: []string{"장기", "채권"}, Description: "은퇴 목표 시점에 맞춰 자동 리밸런싱"},
	{Name: "글로벌 리츠", Risk: 0.4, Themes: []string{"리츠", "부동산"}, Description: "안정적 임대 수익형 부동산 포트폴리오"},
	{Name: "고정쿠폰 ELS", Risk: 0.8, Themes: []string{"구조화상품"}, Description: "조건부 조기상환형 ELS"},
	{Name: "Pre-IPO 펀드", Risk: 0.9, Themes: []string{"프리IPO"}, Description: "미상장 혁신기업 성장 투자"},
	{Name: "인프라 ETF", Risk: 0.6, Themes: []string{"인프라"}, Description: "도로·데이터센터 등 글로벌 인프라"},
	{Name: "AI 스마트베타", Risk: 0.6, Themes: []string{"AI"}, Description: "AI 팩터 기반 스마트베타 ETF"},
}

// All returns the catalog in insertion order.
// 호출자가 수정하지 못하도록 복사본 반환 — Themes 배킹 배열까지 복사
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	for i := range out {
		out[i].Themes = append([]string(nil), out[i].Themes...)
	}
	return out
}

// FindByName returns the product with the given name.
// 카탈로그가 작아 선형 탐색으로 충분
func FindByName(name string) (Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// Size returns the number of catalog entries
func Size() int {
	return len(products)
}
