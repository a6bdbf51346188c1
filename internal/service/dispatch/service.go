package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/acochrane/send-relay/internal/model"
	queuerepo "github.com/acochrane/send-relay/internal/repository/queue"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/dispatch/mock.go -package=mocks

type queueRepository interface {
	EnqueueBatch(ctx context.Context, items []queuerepo.EnqueueItem) ([]uuid.UUID, []string, error)
	ClaimBatch(ctx context.Context, limit int) ([]model.Job, error)
	Complete(ctx context.Context, id uuid.UUID, status model.JobStatus, errDetail *string, threshold int) (model.ReliabilityRecord, error)
	Requeue(ctx context.Context, id uuid.UUID) error
	ReleaseStale(ctx context.Context, cutoff time.Time) (int64, error)
	GetJobStatusByID(ctx context.Context, id uuid.UUID) (model.JobStatus, error)
	ListByStatus(ctx context.Context, status model.JobStatus) ([]model.Job, error)
	CountByStatus(ctx context.Context) (model.StatusCounts, error)
	GetReliability(ctx context.Context, recipient string) (model.ReliabilityRecord, error)
	ResetReliability(ctx context.Context, recipient string) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service implements the coordinator side of the dispatch flow: enqueueing,
// claiming, status callbacks with quarantine evaluation, and the stale-claim
// sweep. All queue state lives in the repository; the cache only mirrors
// per-job status for cheap dashboard reads.
type Service struct {
	repo             queueRepository
	cache            cache
	failureThreshold int
}

// NewService creates a new dispatch service. failureThreshold is the number of
// consecutive failed deliveries after which a recipient is quarantined.
func NewService(repo queueRepository, cache cache, failureThreshold int) *Service {
	return &Service{repo: repo, cache: cache, failureThreshold: failureThreshold}
}

// EnqueueBatch creates one pending job per item, skipping recipients that are
// currently quarantined. It returns the number of jobs queued and the
// recipients skipped.
func (s *Service) EnqueueBatch(ctx context.Context, strategy retry.Strategy, items []queuerepo.EnqueueItem) (int, []string, error) {
	created, skipped, err := s.repo.EnqueueBatch(ctx, items)
	if err != nil {
		return 0, nil, fmt.Errorf("enqueue batch: %w", err)
	}

	for _, id := range created {
		if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(model.StatusPending)); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
		}
	}

	return len(created), skipped, nil
}

// ClaimPending atomically claims up to limit pending jobs for the worker,
// transitioning them to in_progress.
func (s *Service) ClaimPending(ctx context.Context, strategy retry.Strategy, limit int) ([]model.Job, error) {
	jobs, err := s.repo.ClaimBatch(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("claim pending: %w", err)
	}

	for _, j := range jobs {
		if err := s.cache.SetWithRetry(ctx, strategy, j.ID.String(), string(model.StatusInProgress)); err != nil {
			zlog.Logger.Error().Err(err).Str("id", j.ID.String()).Msg("failed to cache job status")
		}
	}

	return jobs, nil
}

// ReportStatus records a delivery outcome for an in_progress job and updates
// the recipient's reliability record in the same transaction. Outcomes other
// than sent or failed are rejected; a job that is not in_progress yields
// queuerepo.ErrJobConflict.
func (s *Service) ReportStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.JobStatus, errDetail string) (model.ReliabilityRecord, error) {
	if !status.Terminal() {
		return model.ReliabilityRecord{}, fmt.Errorf("invalid outcome status %q", status)
	}

	var detail *string
	if status == model.StatusFailed && errDetail != "" {
		detail = &errDetail
	}

	rec, err := s.repo.Complete(ctx, id, status, detail, s.failureThreshold)
	if err != nil {
		return model.ReliabilityRecord{}, fmt.Errorf("report status: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
	}

	if rec.Unreachable {
		zlog.Logger.Warn().
			Str("recipient", rec.Recipient).
			Int("failure_count", rec.FailureCount).
			Msg("recipient quarantined as unreachable")
	}

	return rec, nil
}

// GetJobStatusByID returns a job's status, reading through the cache.
func (s *Service) GetJobStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.JobStatus, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get job status from cache")
	}

	if err == nil && cached != "" {
		return model.JobStatus(cached), nil
	}

	status, err := s.repo.GetJobStatusByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get job status: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
	}

	return status, nil
}

// RequeueJob moves a failed job back to pending. Re-queueing is an explicit
// operator action, never automatic.
func (s *Service) RequeueJob(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	if err := s.repo.Requeue(ctx, id); err != nil {
		return fmt.Errorf("requeue job: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(model.StatusPending)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache job status")
	}

	return nil
}

// ReleaseStale returns jobs claimed before cutoff back to pending so a
// restarted worker can pick them up again.
func (s *Service) ReleaseStale(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := s.repo.ReleaseStale(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("release stale: %w", err)
	}

	return n, nil
}

// ListByStatus returns all jobs with the given status in creation order.
func (s *Service) ListByStatus(ctx context.Context, status model.JobStatus) ([]model.Job, error) {
	jobs, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return jobs, nil
}

// Stats returns aggregated job counts per status.
func (s *Service) Stats(ctx context.Context) (model.StatusCounts, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return model.StatusCounts{}, fmt.Errorf("queue stats: %w", err)
	}

	return counts, nil
}

// GetReliability returns the reliability record for a recipient.
func (s *Service) GetReliability(ctx context.Context, recipient string) (model.ReliabilityRecord, error) {
	rec, err := s.repo.GetReliability(ctx, recipient)
	if err != nil {
		return model.ReliabilityRecord{}, fmt.Errorf("get reliability: %w", err)
	}

	return rec, nil
}

// ResetReliability clears a recipient's quarantine (operator override).
func (s *Service) ResetReliability(ctx context.Context, recipient string) error {
	if err := s.repo.ResetReliability(ctx, recipient); err != nil {
		return fmt.Errorf("reset reliability: %w", err)
	}

	return nil
}
