package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wonny/fintel/backend/internal/profile"
	"github.com/wonny/fintel/backend/internal/session"
	"github.com/wonny/fintel/backend/pkg/logger"
)

// ProfileHandler handles questionnaire submission and profile lookup
// ⭐ SSOT: 프로필 API 핸들러는 이 구조체에서만
type ProfileHandler struct {
	classifier *profile.Classifier
	sessions   *session.Store
	logger     *logger.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(classifier *profile.Classifier, sessions *session.Store, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		classifier: classifier,
		sessions:   sessions,
		logger:     log,
	}
}

// SubmitRequest is one completed questionnaire
type SubmitRequest struct {
	Answers   []string `json:"answers"`  // 점수 문항 답변, 제출 순서대로
	Horizon   string   `json:"horizon"`  // 투자 기간 답변
	Interests []string `json:"interests"`
	Keywords  []string `json:"keywords"` // 뉴스 검색 키워드 선택
}

// SubmitResponse returns the created session and derived profile
type SubmitResponse struct {
	SessionID string          `json:"session_id"`
	Profile   profile.Profile `json:"profile"`
	RawScore  int             `json:"raw_score"`
}

// Submit derives a profile from questionnaire answers and opens a session.
// 재제출은 새 세션을 만든다 — 기존 세션 부분 변경 없음
// POST /api/profile
func (h *ProfileHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Answers) == 0 {
		respondError(w, http.StatusBadRequest, "answers is required")
		return
	}

	result := h.classifier.Classify(req.Answers)
	p := profile.Build(result, req.Horizon, req.Interests)

	sess := session.New(p, req.Keywords)
	h.sessions.Put(sess)

	h.logger.WithFields(map[string]interface{}{
		"session_id": sess.ID,
		"label":      p.Label,
		"raw_score":  result.RawScore,
	}).Info("Profile created")

	respondJSON(w, http.StatusCreated, SubmitResponse{
		SessionID: sess.ID,
		Profile:   p,
		RawScore:  result.RawScore,
	})
}

// Get returns the session's stored profile
// GET /api/profile?session_id=...
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

// Questionnaire returns the fixed question and option sets
// GET /api/questionnaire
func (h *ProfileHandler) Questionnaire(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions": profile.ScoredQuestions,
		"horizon":   profile.HorizonQuestion,
		"interests": profile.InterestOptions,
		"keywords":  profile.KeywordOptions,
	})
}

// session resolves the session_id query parameter, writing the error response
// on failure
func (h *ProfileHandler) session(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	id := r.URL.Query().Get("session_id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "session_id is required")
		return session.Session{}, false
	}

	sess, ok := h.sessions.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Session not found")
		return session.Session{}, false
	}
	return sess, true
}
