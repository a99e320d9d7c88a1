package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizonYears(t *testing.T) {
	tests := []struct {
		answer string
		want   int
	}{
		{"1년 이하", 1},
		{"1~5년", 3},
		{"5년 이상", 5},
		{"unknown", 3}, // 미등록 답변은 명시적 기본값 3년
		{"", 3},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			if got := HorizonYears(tt.answer); got != tt.want {
				t.Errorf("HorizonYears(%q) = %d, want %d", tt.answer, got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	result := Result{Label: LabelNeutral, RiskScore: 0.5, RawScore: 0}

	p := Build(result, "1~5년", []string{"ETF", "AI", "ETF", "인프라"})

	assert.Equal(t, LabelNeutral, p.Label)
	assert.Equal(t, 0.5, p.RiskScore)
	assert.Equal(t, 3, p.HorizonYears)
	// 태그는 중복 제거 후 정렬 저장
	assert.Equal(t, []string{"AI", "ETF", "인프라"}, p.InterestTags)
}

func TestBuildEmptyTags(t *testing.T) {
	p := Build(Result{Label: LabelConservative, RiskScore: 0.0}, "1년 이하", nil)

	assert.Equal(t, 1, p.HorizonYears)
	assert.Empty(t, p.InterestTags)
	assert.NotNil(t, p.InterestTags, "tags should be an empty slice, not nil")
}

// 라벨과 점수가 분류 임계값과 일치하는지 프로필 수준에서도 확인
func TestBuildConsistencyWithClassifier(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	answers := []string{"고수익이면 감수", "고수익", "직접 주식", "10~30%", "10% 수익/5% 손실"}
	result := c.Classify(answers)
	p := Build(result, "5년 이상", []string{"ETF"})

	assert.Equal(t, result.Label, p.Label)
	assert.Equal(t, result.RiskScore, p.RiskScore)
	assert.Equal(t, 5, p.HorizonYears)
}
