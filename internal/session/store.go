package session

import (
	"sync"
	"time"
)

// Store keeps sessions in memory for the lifetime of the process.
// ⭐ SSOT: 세션 보관은 이 저장소에서만 (전역 상태 금지)
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Put stores a session, replacing any existing session with the same ID
// wholesale. 부분 변경 없음
func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get returns a copy of the session with the given ID.
// 공유 포인터를 내보내지 않는다 — 슬라이스 필드는 통째 교체만 하므로 얕은
// 복사로 충분
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// SetThemes records the theme set computed during the last recommendation
// run, so later chat turns rank against the same view of the market
func (s *Store) SetThemes(id string, themes []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Themes = themes
	return true
}

// Delete removes a session
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// PruneOlderThan removes sessions created more than maxAge ago and returns
// how many were removed
func (s *Store) PruneOlderThan(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	pruned := 0
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}

// Len returns the number of stored sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
