package naver

import (
	"strings"
	"time"
)

// pubDate 형식: "Mon, 02 Jan 2006 15:04:05 +0900"
const pubDateLayout = time.RFC1123Z

// ParsePubDate parses a news item publication date
func ParsePubDate(pubDate string) (time.Time, error) {
	return time.Parse(pubDateLayout, pubDate)
}

// FilterRecent keeps articles published within the last N days.
// 날짜를 해석할 수 없는 기사는 제외
func FilterRecent(items []NewsItem, days int, now time.Time) []NewsItem {
	threshold := now.AddDate(0, 0, -days)

	out := make([]NewsItem, 0, len(items))
	for _, item := range items {
		published, err := ParsePubDate(item.PubDate)
		if err != nil {
			continue
		}
		if published.Before(threshold) || published.After(now.AddDate(0, 0, 1)) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// FilterRelevant keeps articles whose title or description contains at least
// one of the keywords. 대소문자 무시 부분 문자열 매칭
func FilterRelevant(items []NewsItem, keywords []string) []NewsItem {
	if len(keywords) == 0 {
		return items
	}

	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	out := make([]NewsItem, 0, len(items))
	for _, item := range items {
		title := strings.ToLower(item.Title)
		desc := strings.ToLower(item.Description)

		for _, kw := range lowered {
			if kw == "" {
				continue
			}
			if strings.Contains(title, kw) || strings.Contains(desc, kw) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
