package worker

import (
	"context"
	"errors"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/acochrane/send-relay/internal/model"
	"github.com/acochrane/send-relay/internal/worker/client"
)

//go:generate mockgen -source=poller.go -destination=../mocks/worker/mock.go -package=mocks

type jobFetcher interface {
	FetchPending(ctx context.Context, limit int) ([]model.Job, error)
}

type deliverer interface {
	Send(to string, msg string) error
}

type outcomeReporter interface {
	Report(ctx context.Context, job model.Job, deliveryErr error) error
}

// Poller is the worker's single sequential processing loop.
//
// It claims a batch of pending jobs from the coordinator, delivers them one
// at a time through the delivery channel, and reports each outcome. The
// inter-message delay paces deliveries to stay under the channel's
// anti-automation detection; the delivery channel is never driven
// concurrently.
type Poller struct {
	fetcher      jobFetcher
	sender       deliverer
	reporter     outcomeReporter
	pollInterval time.Duration
	messageDelay time.Duration
	batchLimit   int
}

// NewPoller creates a Poller.
func NewPoller(f jobFetcher, s deliverer, r outcomeReporter, pollInterval, messageDelay time.Duration, batchLimit int) *Poller {
	return &Poller{
		fetcher:      f,
		sender:       s,
		reporter:     r,
		pollInterval: pollInterval,
		messageDelay: messageDelay,
		batchLimit:   batchLimit,
	}
}

// Run blocks until ctx is cancelled or a fatal error occurs.
//
// The stop signal is honored between poll cycles and between jobs; an
// in-flight delivery always finishes so its outcome is unambiguous. A nil
// return means a clean stop; a non-nil return (rejected credential) should
// terminate the process.
func (p *Poller) Run(ctx context.Context) error {
	zlog.Logger.Info().
		Dur("poll_interval", p.pollInterval).
		Dur("message_delay", p.messageDelay).
		Int("batch_limit", p.batchLimit).
		Msg("worker poller started")

	for {
		if ctx.Err() != nil {
			zlog.Logger.Info().Msg("worker poller stopped")
			return nil
		}

		jobs, err := p.fetcher.FetchPending(ctx, p.batchLimit)
		if err != nil {
			if errors.Is(err, client.ErrUnauthorized) {
				zlog.Logger.Error().Err(err).Msg("coordinator rejected credential, stopping")
				return err
			}
			if ctx.Err() != nil {
				zlog.Logger.Info().Msg("worker poller stopped")
				return nil
			}

			// Transient network/API error: nothing to mutate, poll again later.
			zlog.Logger.Warn().Err(err).Msg("poll failed, will retry next cycle")
			if !p.sleep(ctx, p.pollInterval) {
				return nil
			}
			continue
		}

		if len(jobs) == 0 {
			if !p.sleep(ctx, p.pollInterval) {
				return nil
			}
			continue
		}

		zlog.Logger.Info().Int("jobs", len(jobs)).Msg("processing batch")

		if err := p.processBatch(ctx, jobs); err != nil {
			return err
		}
	}
}

func (p *Poller) processBatch(ctx context.Context, jobs []model.Job) error {
	for i, job := range jobs {
		// Stop only between jobs, never mid-delivery.
		if i > 0 && ctx.Err() != nil {
			zlog.Logger.Info().Msg("stop requested, abandoning rest of batch")
			return nil
		}

		zlog.Logger.Info().
			Str("id", job.ID.String()).
			Str("recipient", job.Recipient).
			Msg("delivering job")

		sendErr := p.sender.Send(job.Recipient, job.Payload)
		if sendErr != nil {
			zlog.Logger.Error().Err(sendErr).Str("id", job.ID.String()).Msg("delivery failed")
		}

		// A finished delivery is always reported, even if the stop signal
		// arrived while it was in flight.
		if err := p.reporter.Report(context.WithoutCancel(ctx), job, sendErr); err != nil {
			return err
		}

		if i < len(jobs)-1 {
			if !p.sleep(ctx, p.messageDelay) {
				zlog.Logger.Info().Msg("stop requested, abandoning rest of batch")
				return nil
			}
		}
	}

	return nil
}

// sleep waits for d or until ctx is cancelled. It reports whether the full
// duration elapsed.
func (p *Poller) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
