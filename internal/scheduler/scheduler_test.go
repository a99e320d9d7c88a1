package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/wonny/fintel/backend/pkg/config"
	"github.com/wonny/fintel/backend/pkg/logger"
)

func testLogger() *logger.Logger {
	cfg := &config.Config{Env: "development", LogLevel: "error", LogFormat: "json"}
	return logger.New(cfg)
}

type stubJob struct {
	name string
	ran  chan struct{}
}

func (j *stubJob) Name() string     { return j.name }
func (j *stubJob) Schedule() string { return "0 0 8 * * *" }
func (j *stubJob) Run(_ context.Context) error {
	close(j.ran)
	return nil
}

func TestAddJobRejectsDuplicates(t *testing.T) {
	s := New(testLogger())

	if err := s.AddJob(&stubJob{name: "crawl", ran: make(chan struct{})}); err != nil {
		t.Fatalf("first AddJob failed: %v", err)
	}
	if err := s.AddJob(&stubJob{name: "crawl", ran: make(chan struct{})}); err == nil {
		t.Error("duplicate job name must be rejected")
	}
}

func TestRunJobImmediately(t *testing.T) {
	s := New(testLogger())

	job := &stubJob{name: "crawl", ran: make(chan struct{})}
	if err := s.AddJob(job); err != nil {
		t.Fatalf("AddJob failed: %v", err)
	}

	if err := s.RunJob("crawl"); err != nil {
		t.Fatalf("RunJob failed: %v", err)
	}

	select {
	case <-job.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}

	// 이력이 성공으로 기록될 때까지 대기
	deadline := time.After(2 * time.Second)
	for {
		history, err := s.GetJobHistory("crawl")
		if err != nil {
			t.Fatalf("GetJobHistory failed: %v", err)
		}
		if last, ok := history.LastResult(); ok {
			if !last.Success {
				t.Errorf("result = %+v, want success", last)
			}
			return
		}

		select {
		case <-deadline:
			t.Fatal("no history recorded")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestRunJobUnknown(t *testing.T) {
	if err := New(testLogger()).RunJob("missing"); err == nil {
		t.Error("unknown job must error")
	}
}

func TestJobHistoryBounds(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{Success: i%2 == 0})
	}

	if len(h.Results) != 100 {
		t.Errorf("history length = %d, want capped at 100", len(h.Results))
	}
	if rate := h.SuccessRate(); rate != 0.5 {
		t.Errorf("SuccessRate = %f, want 0.5", rate)
	}
}
