package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLabels(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	tests := []struct {
		name    string
		answers []string
		wantRaw int
		want    Label
	}{
		{
			name:    "maximally aggressive",
			answers: []string{"고수익이면 감수", "고수익", "직접 주식", "30% 이상", "20% 수익/손실"},
			wantRaw: 9,
			want:    LabelAggressive,
		},
		{
			name:    "maximally conservative",
			answers: []string{"절대 불가", "안정", "예금·적금", "10% 이하", "3% 안정"},
			wantRaw: -9,
			want:    LabelConservative,
		},
		{
			name:    "all neutral answers",
			answers: []string{"감수 가능", "균형", "펀드 소액", "10~30%", "10% 수익/5% 손실"},
			wantRaw: 0,
			want:    LabelNeutral,
		},
		{
			name:    "exactly at aggressive boundary",
			answers: []string{"고수익이면 감수", "고수익", "펀드 소액", "10~30%", "10% 수익/5% 손실"},
			wantRaw: 4,
			want:    LabelAggressive,
		},
		{
			name:    "exactly at conservative boundary",
			answers: []string{"절대 불가", "안정", "펀드 소액", "감수 가능", "감수 가능"},
			wantRaw: -4,
			want:    LabelConservative,
		},
		{
			name:    "one below aggressive boundary",
			answers: []string{"고수익이면 감수", "감수 가능", "직접 주식", "10~30%", "10% 수익/5% 손실"},
			wantRaw: 3,
			want:    LabelNeutral,
		},
		{
			name:    "unknown answers contribute zero",
			answers: []string{"모르겠음", "해당 없음", "", "10% 이하", "3% 안정"},
			wantRaw: -4,
			want:    LabelConservative,
		},
		{
			name:    "empty answer tuple",
			answers: nil,
			wantRaw: 0,
			want:    LabelNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.answers)
			if got.RawScore != tt.wantRaw {
				t.Errorf("RawScore = %d, want %d", got.RawScore, tt.wantRaw)
			}
			if got.Label != tt.want {
				t.Errorf("Label = %s, want %s", got.Label, tt.want)
			}
		})
	}
}

// 라벨과 원점수의 상호 일관성: raw>=4 ⟺ 공격형, raw<=-4 ⟺ 안정형
func TestLabelRawScoreConsistency(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	// 전 문항 조합 탐색 (3^5 = 243)
	var walk func(depth int, answers []string)
	walk = func(depth int, answers []string) {
		if depth == len(ScoredQuestions) {
			got := c.Classify(answers)
			switch {
			case got.RawScore >= 4:
				assert.Equal(t, LabelAggressive, got.Label, "answers=%v raw=%d", answers, got.RawScore)
			case got.RawScore <= -4:
				assert.Equal(t, LabelConservative, got.Label, "answers=%v raw=%d", answers, got.RawScore)
			default:
				assert.Equal(t, LabelNeutral, got.Label, "answers=%v raw=%d", answers, got.RawScore)
			}
			return
		}
		for _, opt := range ScoredQuestions[depth].Options {
			walk(depth+1, append(answers, opt))
		}
	}
	walk(0, nil)
}

func TestNormalize(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	// risk_score = (raw+8)/16 for every raw in [-8,8]
	for raw := -8; raw <= 8; raw++ {
		want := (float64(raw) + 8) / 16
		got := c.normalize(raw)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("normalize(%d) = %f, want %f", raw, got, want)
		}
	}

	// Monotonic in raw score
	prev := -1.0
	for raw := -10; raw <= 10; raw++ {
		got := c.normalize(raw)
		if got < prev {
			t.Errorf("normalize not monotonic at raw=%d: %f < %f", raw, got, prev)
		}
		prev = got
	}

	// 밴드 밖 원점수는 정규화 결과만 클램프
	if got := c.normalize(-9); got != 0 {
		t.Errorf("normalize(-9) = %f, want 0 (clamped)", got)
	}
	if got := c.normalize(9); got != 1 {
		t.Errorf("normalize(9) = %f, want 1 (clamped)", got)
	}
}

// 극단 보수 응답: raw=-9는 밴드 밖이지만 라벨은 원점수 기준으로 안정형,
// risk_score는 0으로 클램프
func TestClassifyBeyondBand(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	got := c.Classify([]string{"절대 불가", "안정", "예금·적금", "10% 이하", "3% 안정"})
	assert.Equal(t, -9, got.RawScore)
	assert.Equal(t, LabelConservative, got.Label)
	assert.Equal(t, 0.0, got.RiskScore)

	got = c.Classify([]string{"고수익이면 감수", "고수익", "직접 주식", "30% 이상", "20% 수익/손실"})
	assert.Equal(t, 9, got.RawScore)
	assert.Equal(t, LabelAggressive, got.Label)
	assert.Equal(t, 1.0, got.RiskScore)
}

func TestClassifyIdempotent(t *testing.T) {
	c := NewClassifier(DefaultConfig())
	answers := []string{"감수 가능", "고수익", "직접 주식", "10~30%", "10% 수익/5% 손실"}

	first := c.Classify(answers)
	second := c.Classify(answers)
	assert.Equal(t, first, second)
}
