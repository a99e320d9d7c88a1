package profile

import "sort"

// Profile is the normalized investor profile built from one questionnaire
// submission. 세션 동안 유지되며 재제출 시 통째로 교체 (부분 변경 없음)
type Profile struct {
	RiskScore    float64  `json:"risk_score"` // 0.0(보수) ~ 1.0(공격)
	Label        Label    `json:"label"`
	HorizonYears int      `json:"horizon_years"`
	InterestTags []string `json:"interest_tags"`
}

// DefaultHorizonYears is used when the horizon answer is not recognized.
// 미등록 답변은 실패가 아니라 중간값(3년)으로 처리
const DefaultHorizonYears = 3

// horizonYears maps the horizon-category answer to integer years
var horizonYears = map[string]int{
	"1년 이하": 1,
	"1~5년":  3,
	"5년 이상": 5,
}

// HorizonYears resolves a horizon answer to years, falling back to the
// documented default for unrecognized answers
func HorizonYears(answer string) int {
	if years, ok := horizonYears[answer]; ok {
		return years
	}
	return DefaultHorizonYears
}

// Build assembles an investor profile from the classifier result, the horizon
// answer and the user-declared interest tags. Tags are stored as a set:
// 중복 제거, 순서 무관 (결정성을 위해 정렬 저장)
func Build(result Result, horizonAnswer string, interestTags []string) Profile {
	return Profile{
		RiskScore:    result.RiskScore,
		Label:        result.Label,
		HorizonYears: HorizonYears(horizonAnswer),
		InterestTags: dedupeSorted(interestTags),
	}
}

// dedupeSorted collapses duplicates and returns a sorted copy
func dedupeSorted(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
