package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"ETFSentinel/internal/symbols"
)

// Scheduler manages periodic symbol list refreshes.
type Scheduler struct {
	Cron    *cron.Cron
	Symbols *symbols.CachedSource
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, src *symbols.CachedSource) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Symbols: src,
		Ctx:     ctx,
	}
}

// RegisterRefresh registers the symbol refresh task on the given six-field cron spec.
func (s *Scheduler) RegisterRefresh(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register symbol refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RefreshNow executes the refresh task immediately.
func (s *Scheduler) RefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Println("[INFO] refreshing ETF symbol list")
	list := s.Symbols.Refresh(s.Ctx)
	log.Printf("[INFO] symbol list refreshed: %d symbols", len(list))
}
