// Package news collects, deduplicates and stores financial news articles.
package news

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"github.com/wonny/fintel/backend/internal/external/naver"
)

// Article is one stored news article
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Query       string    `json:"query"`
	PublishedAt time.Time `json:"published_at"`
	Hash        string    `json:"hash"`
	Summary     string    `json:"summary,omitempty"`
	Themes      []string  `json:"themes,omitempty"`
}

// FromNewsItem converts a search result into an article.
// 발행일을 해석할 수 없으면 false
func FromNewsItem(item naver.NewsItem, query string) (Article, bool) {
	published, err := naver.ParsePubDate(item.PubDate)
	if err != nil {
		return Article{}, false
	}

	return Article{
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
		Query:       query,
		PublishedAt: published,
		Hash:        HashArticle(item.Title, item.Link),
	}, true
}

// HashArticle builds the dedup key for an article.
// 같은 기사가 여러 키워드 검색에 걸려도 한 번만 저장되도록 제목+링크 기준
func HashArticle(title, link string) string {
	sum := md5.Sum([]byte(title + link))
	return hex.EncodeToString(sum[:])
}

// Dedupe drops articles whose hash was already seen, preserving order
func Dedupe(articles []Article) []Article {
	seen := make(map[string]bool, len(articles))
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if seen[a.Hash] {
			continue
		}
		seen[a.Hash] = true
		out = append(out, a)
	}
	return out
}
