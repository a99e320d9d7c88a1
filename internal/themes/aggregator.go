// Package themes merges user keywords with article classification tags into
// the theme set used for product matching.
package themes

import "sort"

// Aggregate unions the session keywords with per-article theme tags into a
// single deduplicated theme set. 순수 집합 연산: 가중치/빈도 계산 없음.
// 태그는 대소문자 구분 (case-sensitive)
func Aggregate(keywords []string, articleThemes [][]string) []string {
	seen := make(map[string]struct{})

	add := func(tag string) {
		if tag == "" {
			return
		}
		seen[tag] = struct{}{}
	}

	for _, kw := range keywords {
		add(kw)
	}
	for _, tags := range articleThemes {
		for _, tag := range tags {
			add(tag)
		}
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
