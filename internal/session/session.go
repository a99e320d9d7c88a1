// Package session carries per-user state through the recommendation flow as
// an explicit value instead of ambient process-wide storage.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/wonny/fintel/backend/internal/profile"
)

// Session holds one user's profile and keyword selections.
// 설문 재제출 시 통째로 교체된다
type Session struct {
	ID        string          `json:"id"`
	Profile   profile.Profile `json:"profile"`
	Keywords  []string        `json:"keywords"`
	Themes    []string        `json:"themes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// New creates a session for a completed questionnaire submission
func New(p profile.Profile, keywords []string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Profile:   p,
		Keywords:  keywords,
		CreatedAt: time.Now(),
	}
}
