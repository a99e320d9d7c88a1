package jobs

import (
	"context"
	"time"

	"github.com/wonny/fintel/backend/internal/session"
	"github.com/wonny/fintel/backend/pkg/logger"
)

// 설문 세션 보존 기간
const sessionMaxAge = 24 * time.Hour

// SessionCleanupJob prunes stale questionnaire sessions
type SessionCleanupJob struct {
	sessions *session.Store
	logger   *logger.Logger
}

// NewSessionCleanupJob creates a new session cleanup job
func NewSessionCleanupJob(sessions *session.Store, log *logger.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		logger:   log,
	}
}

// Name returns the job name
func (j *SessionCleanupJob) Name() string {
	return "session_cleanup"
}

// Schedule returns the cron schedule (every hour)
func (j *SessionCleanupJob) Schedule() string {
	return "0 0 * * * *"
}

// Run removes sessions older than the retention window
func (j *SessionCleanupJob) Run(ctx context.Context) error {
	pruned := j.sessions.PruneOlderThan(sessionMaxAge)
	if pruned > 0 {
		j.logger.WithField("pruned", pruned).Info("Stale sessions removed")
	}
	return nil
}
