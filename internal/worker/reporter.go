package worker

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/acochrane/send-relay/internal/model"
	"github.com/acochrane/send-relay/internal/worker/client"
)

type statusClient interface {
	ReportStatus(ctx context.Context, id uuid.UUID, status model.JobStatus, errDetail string) error
}

// Reporter pushes delivery outcomes back to the coordinator.
//
// Per-job callback failures never abort the batch: a conflict means the
// stale sweep or a duplicate callback got there first and is safely ignored;
// transient errors leave the job in_progress for the sweep to reclaim. Only
// a rejected credential is escalated.
type Reporter struct {
	client statusClient
}

// NewReporter creates a Reporter on top of the coordinator API client.
func NewReporter(c statusClient) *Reporter {
	return &Reporter{client: c}
}

// Report maps a delivery outcome to a job status and posts it.
func (r *Reporter) Report(ctx context.Context, job model.Job, deliveryErr error) error {
	status := model.StatusSent
	detail := ""
	if deliveryErr != nil {
		status = model.StatusFailed
		detail = deliveryErr.Error()
	}

	err := r.client.ReportStatus(ctx, job.ID, status, detail)
	if err == nil {
		zlog.Logger.Info().
			Str("id", job.ID.String()).
			Str("status", string(status)).
			Msg("job outcome reported")
		return nil
	}

	if errors.Is(err, client.ErrConflict) {
		zlog.Logger.Warn().
			Str("id", job.ID.String()).
			Msg("job no longer in progress, outcome dropped")
		return nil
	}

	if errors.Is(err, client.ErrUnauthorized) {
		return err
	}

	zlog.Logger.Error().Err(err).
		Str("id", job.ID.String()).
		Msg("failed to report job outcome")
	return nil
}
