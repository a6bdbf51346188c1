package sweep

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"
)

type staleReleaser interface {
	ReleaseStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// Sweeper periodically returns jobs stuck in_progress past the liveness
// window back to pending, so a restarted worker can claim them again.
type Sweeper struct {
	service    staleReleaser
	interval   time.Duration
	staleAfter time.Duration
}

// New creates a Sweeper that runs every interval and releases claims older
// than staleAfter.
func New(service staleReleaser, interval, staleAfter time.Duration) *Sweeper {
	return &Sweeper{service: service, interval: interval, staleAfter: staleAfter}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	zlog.Logger.Info().
		Dur("interval", s.interval).
		Dur("stale_after", s.staleAfter).
		Msg("stale-claim sweeper started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("stale-claim sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.staleAfter)

	n, err := s.service.ReleaseStale(ctx, cutoff)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to release stale jobs")
		return
	}

	if n > 0 {
		zlog.Logger.Warn().Int64("released", n).Msg("returned stale in_progress jobs to pending")
	}
}
