package handlers

import (
	"context"
	"net/http"

	"github.com/wonny/fintel/backend/internal/news"
	"github.com/wonny/fintel/backend/internal/recommend"
	"github.com/wonny/fintel/backend/internal/session"
	"github.com/wonny/fintel/backend/pkg/logger"
)

// Digester enriches articles with summaries and themes
type Digester interface {
	Digest(ctx context.Context, keywords []string, articles []news.Article) ([]news.Article, []string)
}

// RecommendHandler handles product recommendation requests
// ⭐ SSOT: 추천 API 핸들러는 이 구조체에서만
type RecommendHandler struct {
	sessions *session.Store
	articles ArticleReader
	digester Digester
	ranker   *recommend.Ranker
	logger   *logger.Logger
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(
	sessions *session.Store,
	articles ArticleReader,
	digester Digester,
	ranker *recommend.Ranker,
	log *logger.Logger,
) *RecommendHandler {
	return &RecommendHandler{
		sessions: sessions,
		articles: articles,
		digester: digester,
		ranker:   ranker,
		logger:   log,
	}
}

// RecommendResponse is the ranked recommendation payload
type RecommendResponse struct {
	SessionID       string             `json:"session_id"`
	Themes          []string           `json:"themes"`
	Articles        []news.Article     `json:"articles"`
	Recommendations []recommend.Scored `json:"recommendations"`
}

// Get ranks products for the session's profile against the current news
// themes. 뉴스가 없으면 관심 태그만으로 순위를 매긴다
// GET /api/recommendations?session_id=...
func (h *RecommendHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("session_id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	sess, ok := h.sessions.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}

	articles := h.latestArticles(ctx)
	enriched, themeSet := h.digester.Digest(ctx, sess.Keywords, articles)
	h.sessions.SetThemes(sess.ID, themeSet)

	ranked := h.ranker.Rank(sess.Profile, themeSet)

	h.logger.WithFields(map[string]interface{}{
		"session_id": sess.ID,
		"articles":   len(enriched),
		"themes":     len(themeSet),
		"ranked":     len(ranked),
	}).Info("Recommendations computed")

	if enriched == nil {
		enriched = []news.Article{}
	}
	respondJSON(w, http.StatusOK, RecommendResponse{
		SessionID:       sess.ID,
		Themes:          themeSet,
		Articles:        enriched,
		Recommendations: ranked,
	})
}

// latestArticles loads the most recent crawl's articles.
// 조회 실패는 빈 목록으로 흡수 — 추천은 뉴스 없이도 동작해야 한다
func (h *RecommendHandler) latestArticles(ctx context.Context) []news.Article {
	latest, found, err := h.articles.LatestDate(ctx)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to resolve latest crawl date")
		return nil
	}
	if !found {
		return nil
	}

	articles, err := h.articles.GetByDate(ctx, latest)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to load articles")
		return nil
	}
	return articles
}
