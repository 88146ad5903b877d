package scheduler

import (
	"sync"
	"time"

	"parley/backend/internal/logger"
	"parley/backend/internal/service"
)

// Scheduler periodically ends idle conversation sessions so abandoned
// sessions release their speech-engine resources.
type Scheduler struct {
	conversations service.ConversationService
	interval      time.Duration
	ttl           time.Duration
	stopCh        chan struct{}
	wg            sync.WaitGroup
}

func New(conversations service.ConversationService, interval, ttl time.Duration) *Scheduler {
	return &Scheduler{
		conversations: conversations,
		interval:      interval,
		ttl:           ttl,
		stopCh:        make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "reap", "resource", "session", "result", "ok", "interval_ms", s.interval.Milliseconds(), "ttl_ms", s.ttl.Milliseconds())
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "reap", "resource", "session", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.reap()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) reap() {
	ended := s.conversations.EndIdle(s.ttl)
	if ended > 0 {
		logger.Info("idle sessions ended", "module", "scheduler", "action", "reap", "resource", "session", "result", "ok", "ended", ended)
	}
}
