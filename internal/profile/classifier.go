package profile

// Label represents the discrete investor risk bucket
type Label string

const (
	LabelConservative Label = "안정형"
	LabelNeutral      Label = "중립형"
	LabelAggressive   Label = "공격형"
)

// Config parameterizes the questionnaire classifier.
// 과거 세션별로 달랐던 가중치/임계값 변형을 명명된 설정으로 통합
// ⭐ SSOT: 성향 분류 파라미터는 이 구조체에서만
type Config struct {
	// Weights maps an answer string to its integer risk contribution.
	// 미등록 답변은 0점 처리 (fail-soft)
	Weights map[string]int

	// Thresholds applied to the UNCLAMPED raw score.
	AggressiveMin   int // raw >= AggressiveMin → 공격형
	ConservativeMax int // raw <= ConservativeMax → 안정형

	// Normalization band for the continuous risk score.
	RawMin int
	RawMax int
}

// DefaultConfig returns the canonical weight table.
// 극단값 합산 범위는 명목상 [-8,+8]이지만 실제 최솟값은 -9, 최댓값은 +9
// (5개 문항 극단 가중치 합). 임계값 비교는 원점수로 하고 정규화 결과만 클램프한다.
func DefaultConfig() Config {
	return Config{
		Weights: map[string]int{
			// 원금 손실 가능성
			"절대 불가":     -2,
			"감수 가능":     0,
			"고수익이면 감수": +2,
			// 투자 시 가장 중요 요소
			"안정":  -2,
			"균형":  0,
			"고수익": +2,
			// 투자 경험
			"예금·적금": -1,
			"펀드 소액": 0,
			"직접 주식": +1,
			// 투자 가능 비율
			"10% 이하": -2,
			"10~30%":  -1,
			"30% 이상": +2,
			// 선호 투자 상황
			"3% 안정":          -2,
			"10% 수익/5% 손실": +1,
			"20% 수익/손실":    +2,
		},
		AggressiveMin:   4,
		ConservativeMax: -4,
		RawMin:          -8,
		RawMax:          8,
	}
}

// Result holds the classifier output for one answer tuple
type Result struct {
	Label     Label   `json:"label"`
	RiskScore float64 `json:"risk_score"` // 0.0(보수) ~ 1.0(공격)
	RawScore  int     `json:"raw_score"`
}

// Classifier maps questionnaire answers to a risk label and score.
// 순수 함수: I/O 없음, 동일 입력에 항상 동일 출력
type Classifier struct {
	cfg Config
}

// NewClassifier creates a classifier with the given configuration
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify sums per-answer weights into a raw score, labels it against the
// raw-score thresholds, then normalizes into [0,1].
// 임계값 판정이 정규화보다 먼저: 경계값(±4)은 중립이 아니라 해당 버킷
func (c *Classifier) Classify(answers []string) Result {
	raw := 0
	for _, a := range answers {
		raw += c.cfg.Weights[a] // 미등록 답변은 0
	}

	var label Label
	switch {
	case raw >= c.cfg.AggressiveMin:
		label = LabelAggressive
	case raw <= c.cfg.ConservativeMax:
		label = LabelConservative
	default:
		label = LabelNeutral
	}

	return Result{
		Label:     label,
		RiskScore: c.normalize(raw),
		RawScore:  raw,
	}
}

// normalize maps a raw score onto [0,1], clamping values outside the band
func (c *Classifier) normalize(raw int) float64 {
	span := float64(c.cfg.RawMax - c.cfg.RawMin)
	score := (float64(raw) - float64(c.cfg.RawMin)) / span

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
