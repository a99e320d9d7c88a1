package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wonny/fintel/backend/internal/news"
	"github.com/wonny/fintel/backend/pkg/logger"
)

// ArticleReader reads stored articles
type ArticleReader interface {
	GetByDate(ctx context.Context, day time.Time) ([]news.Article, error)
	LatestDate(ctx context.Context) (time.Time, bool, error)
}

// NewsCrawler triggers a crawl run
type NewsCrawler interface {
	CrawlToday(ctx context.Context, keywords []string) (int, error)
}

// NewsHandler handles news listing and crawl triggers
// ⭐ SSOT: 뉴스 API 핸들러는 이 구조체에서만
type NewsHandler struct {
	articles ArticleReader
	crawler  NewsCrawler
	digester Digester
	logger   *logger.Logger
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(articles ArticleReader, crawler NewsCrawler, digester Digester, log *logger.Logger) *NewsHandler {
	return &NewsHandler{
		articles: articles,
		crawler:  crawler,
		digester: digester,
		logger:   log,
	}
}

// ListResponse is the article listing payload
type ListResponse struct {
	Date     string         `json:"date"`
	Count    int            `json:"count"`
	Articles []news.Article `json:"articles"`
}

// List returns stored articles for a date, defaulting to the most recent
// crawl date with data
// GET /api/news?date=YYYY-MM-DD
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var day time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'date' format (expected YYYY-MM-DD)")
			return
		}
		day = parsed
	} else {
		latest, found, err := h.articles.LatestDate(ctx)
		if err != nil {
			h.logger.WithError(err).Error("Failed to resolve latest crawl date")
			respondError(w, http.StatusInternalServerError, "Failed to retrieve articles")
			return
		}
		if !found {
			respondJSON(w, http.StatusOK, ListResponse{Articles: []news.Article{}})
			return
		}
		day = latest
	}

	articles, err := h.articles.GetByDate(ctx, day)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get articles")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve articles")
		return
	}

	// 요약/테마 부착. LLM 결과는 입력 해시로 캐시되므로 반복 조회는 싸다
	articles, _ = h.digester.Digest(ctx, nil, articles)
	if articles == nil {
		articles = []news.Article{}
	}

	respondJSON(w, http.StatusOK, ListResponse{
		Date:     day.Format("2006-01-02"),
		Count:    len(articles),
		Articles: articles,
	})
}

// CrawlRequest selects the crawl keywords. 비어 있으면 기본 키워드
type CrawlRequest struct {
	Keywords []string `json:"keywords"`
}

// Crawl collects today's news and appends new articles
// POST /api/news/crawl
func (h *NewsHandler) Crawl(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CrawlRequest
	if r.Body != nil {
		// 빈 본문 허용 — 기본 키워드로 수집
		json.NewDecoder(r.Body).Decode(&req)
	}

	saved, err := h.crawler.CrawlToday(ctx, req.Keywords)
	if err != nil {
		h.logger.WithError(err).Error("News crawl failed")
		respondError(w, http.StatusInternalServerError, "Failed to crawl news")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"saved":  saved,
	})
}
