package scheduler

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"ETFSentinel/internal/symbols"
)

type stubSource struct{ calls atomic.Int32 }

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) ListSymbols(_ context.Context) []string {
	s.calls.Add(1)
	return []string{"SPY", "IVV"}
}

func TestRegisterRefresh(t *testing.T) {
	s := NewScheduler(t.Context(), symbols.NewCachedSource(&stubSource{}))
	assert.NoError(t, s.RegisterRefresh("0 */15 * * * *"))
	assert.Len(t, s.Cron.Entries(), 1)
	assert.Error(t, s.RegisterRefresh("not a cron"))
}

func TestRefreshNow(t *testing.T) {
	stub := &stubSource{}
	cached := symbols.NewCachedSource(stub)
	s := NewScheduler(t.Context(), cached)

	s.RefreshNow()
	assert.Equal(t, int32(1), stub.calls.Load())
	assert.Equal(t, []string{"SPY", "IVV"}, cached.ListSymbols(t.Context()))
	assert.Equal(t, int32(1), stub.calls.Load())
}

func TestRefreshSkippedAfterShutdown(t *testing.T) {
	stub := &stubSource{}
	ctx, cancel := context.WithCancel(t.Context())
	s := NewScheduler(ctx, symbols.NewCachedSource(stub))
	cancel()

	s.RefreshNow()
	assert.Zero(t, stub.calls.Load())
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(t.Context(), symbols.NewCachedSource(&stubSource{}))
	s.Start()
	s.Stop()
}
