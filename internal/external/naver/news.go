// Package naver wraps the Naver Open API news search.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/httputil"
	"github.com/wonny/fintel/backend/pkg/logger"
)

const (
	searchPath   = "/v1/search/news.json"
	displayCount = 20 // 키워드당 최신순 20건
)

// NewsItem is one article returned by the news search
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
	Link        string `json:"link"`
}

// searchResponse is the Naver Open API response envelope
type searchResponse struct {
	Items []NewsItem `json:"items"`
}

// Client handles communication with the Naver Open API
// ⭐ SSOT: Naver 뉴스 검색 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	cfg        config.NaverConfig
}

// NewClient creates a new Naver news client.
// 뉴스 검색은 5초 타임아웃, 실패 시 빈 목록 반환 (fail-soft)
func NewClient(cfg config.NaverConfig, log *logger.Logger) *Client {
	httpClient := httputil.NewWithTimeout(log, 5*time.Second).
		DisableRetry().
		WithRateLimit(5, 5) // Naver Open API 호출 제한 보호

	return &Client{
		httpClient: httpClient,
		logger:     log,
		cfg:        cfg,
	}
}

// Search fetches up to 20 latest articles for a keyword.
// 어떤 실패(네트워크, 비정상 응답, 타임아웃)에도 에러 대신 빈 목록을 반환한다
func (c *Client) Search(ctx context.Context, keyword string) []NewsItem {
	params := url.Values{}
	params.Set("query", keyword)
	params.Set("display", fmt.Sprintf("%d", displayCount))
	params.Set("sort", "date")

	fullURL := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, searchPath, params.Encode())

	resp, err := c.httpClient.GetWithHeaders(ctx, fullURL, map[string]string{
		"X-Naver-Client-Id":     c.cfg.ClientID,
		"X-Naver-Client-Secret": c.cfg.ClientSecret,
	})
	if err != nil {
		c.logger.WithError(err).WithField("keyword", keyword).Warn("News search failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(map[string]interface{}{
			"keyword":     keyword,
			"status_code": resp.StatusCode,
		}).Warn("News search returned non-200")
		return nil
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.WithError(err).WithField("keyword", keyword).Warn("News search decode failed")
		return nil
	}

	// 제목/요약의 HTML 태그와 엔티티 제거
	for i := range parsed.Items {
		parsed.Items[i].Title = CleanText(parsed.Items[i].Title)
		parsed.Items[i].Description = CleanText(parsed.Items[i].Description)
	}

	c.logger.WithFields(map[string]interface{}{
		"keyword": keyword,
		"count":   len(parsed.Items),
	}).Debug("News search completed")

	return parsed.Items
}

// CleanText strips HTML markup and decodes entities from API text fields.
// 검색 API가 제목에 <b> 강조 태그와 &quot; 류 엔티티를 섞어 반환한다
func CleanText(text string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	return strings.TrimSpace(doc.Text())
}
