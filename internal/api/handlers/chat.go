package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wonny/fintel/backend/internal/profile"
	"github.com/wonny/fintel/backend/internal/recommend"
	"github.com/wonny/fintel/backend/internal/session"
	"github.com/wonny/fintel/backend/pkg/logger"
)

const (
	writeWait = 10 * time.Second
	// 유휴 연결 정리. LLM 응답 대기보다 넉넉하게
	readWait = 5 * time.Minute
)

// Asker answers a question in the context of a profile and ranking
type Asker interface {
	Ask(ctx context.Context, p profile.Profile, ranked []recommend.Scored, question string) string
}

// ChatHandler handles advisor Q&A over HTTP and WebSocket
// ⭐ SSOT: 챗 API 핸들러는 이 구조체에서만
type ChatHandler struct {
	sessions *session.Store
	advisor  Asker
	ranker   *recommend.Ranker
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(sessions *session.Store, adv Asker, ranker *recommend.Ranker, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		sessions: sessions,
		advisor:  adv,
		ranker:   ranker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: log,
	}
}

// ChatRequest is one advisor question
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

// ChatResponse is the advisor answer
type ChatResponse struct {
	Answer string `json:"answer"`
}

// Ask answers one question for the session
// POST /api/chat
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "question is required")
		return
	}

	sess, ok := h.sessions.Get(req.SessionID)
	if !ok {
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}

	answer := h.answer(r.Context(), sess, req.Question)
	respondJSON(w, http.StatusOK, ChatResponse{Answer: answer})
}

// Stream upgrades to WebSocket and answers questions until the client
// disconnects. 메시지 형식은 POST /api/chat과 동일
// GET /ws/chat
func (h *ChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := r.Context()
	for {
		conn.SetReadDeadline(time.Now().Add(readWait))

		var req ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WithError(err).Debug("WebSocket closed unexpectedly")
			}
			return
		}

		var answer string
		if sess, ok := h.sessions.Get(req.SessionID); ok {
			answer = h.answer(ctx, sess, req.Question)
		} else {
			answer = "세션을 찾을 수 없습니다. 설문을 먼저 제출해주세요."
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(ChatResponse{Answer: answer}); err != nil {
			h.logger.WithError(err).Debug("WebSocket write failed")
			return
		}
	}
}

// answer ranks products against the session's last theme set and asks the
// advisor. 추천을 아직 조회하지 않았다면 관심 태그만으로 순위를 매긴다
func (h *ChatHandler) answer(ctx context.Context, sess session.Session, question string) string {
	ranked := h.ranker.Rank(sess.Profile, sess.Themes)
	return h.advisor.Ask(ctx, sess.Profile, ranked, question)
}
