package profile

// Question is one questionnaire entry with its fixed option set
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// HorizonQuestion is handled separately from the scored questions:
// 점수 합산이 아니라 투자 기간(년) 조회에 사용
var HorizonQuestion = Question{
	ID:      "horizon",
	Text:    "투자 가능 기간은?",
	Options: []string{"1년 이하", "1~5년", "5년 이상"},
}

// ScoredQuestions are the fixed questions whose answers feed the classifier,
// in submission order
var ScoredQuestions = []Question{
	{
		ID:      "loss_tolerance",
		Text:    "원금 손실 가능성 있다면?",
		Options: []string{"절대 불가", "감수 가능", "고수익이면 감수"},
	},
	{
		ID:      "priority",
		Text:    "투자 시 가장 중요 요소는?",
		Options: []string{"안정", "균형", "고수익"},
	},
	{
		ID:      "experience",
		Text:    "투자 경험은?",
		Options: []string{"예금·적금", "펀드 소액", "직접 주식"},
	},
	{
		ID:      "allocation",
		Text:    "투자 가능 비율은?",
		Options: []string{"10% 이하", "10~30%", "30% 이상"},
	},
	{
		ID:      "preference",
		Text:    "선호 투자 상황은?",
		Options: []string{"3% 안정", "10% 수익/5% 손실", "20% 수익/손실"},
	},
}

// InterestOptions are the selectable interest themes
var InterestOptions = []string{"인프라", "ETF", "TDF", "EMP", "프리IPO", "구조화상품", "AI"}

// KeywordOptions are the selectable news keywords
var KeywordOptions = []string{"금리", "인프라", "AI", "프리IPO", "채권", "ETF", "구조화상품"}
