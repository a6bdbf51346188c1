package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/acochrane/send-relay/internal/api/respond"
	"github.com/acochrane/send-relay/internal/config"
	"github.com/acochrane/send-relay/internal/model"
	queuerepo "github.com/acochrane/send-relay/internal/repository/queue"
)

// dispatchService defines the interface that the Handler depends on.
//
// It abstracts enqueueing, claiming, status callbacks with quarantine
// evaluation, and the audit queries used by the dashboard.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/queue/mock.go -package=mocks
type dispatchService interface {
	EnqueueBatch(ctx context.Context, strategy retry.Strategy, items []queuerepo.EnqueueItem) (int, []string, error)
	ClaimPending(ctx context.Context, strategy retry.Strategy, limit int) ([]model.Job, error)
	ReportStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.JobStatus, errDetail string) (model.ReliabilityRecord, error)
	GetJobStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.JobStatus, error)
	RequeueJob(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
	ListByStatus(ctx context.Context, status model.JobStatus) ([]model.Job, error)
	Stats(ctx context.Context) (model.StatusCounts, error)
	GetReliability(ctx context.Context, recipient string) (model.ReliabilityRecord, error)
	ResetReliability(ctx context.Context, recipient string) error
}

// Handler handles HTTP requests for the send queue.
type Handler struct {
	service   dispatchService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s dispatchService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// EnqueueMessage is one recipient/payload pair of an enqueue request.
type EnqueueMessage struct {
	Recipient string `json:"recipient" validate:"required"`
	Payload   string `json:"payload" validate:"required"`
}

// EnqueueRequest represents the JSON body of a bulk enqueue request.
type EnqueueRequest struct {
	Messages []EnqueueMessage `json:"messages" validate:"required,min=1,dive"`
}

// EnqueueResponse reports how many jobs were queued and how many recipients
// were skipped because they are quarantined.
type EnqueueResponse struct {
	Queued            int      `json:"queued"`
	Skipped           int      `json:"skipped"`
	SkippedRecipients []string `json:"skipped_recipients,omitempty"`
}

// Enqueue handles POST requests that queue one job per recipient.
//
// Recipients flagged unreachable are skipped, never enqueued.
func (h *Handler) Enqueue(c *ginext.Context) {
	var req EnqueueRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	items := make([]queuerepo.EnqueueItem, 0, len(req.Messages))
	for _, m := range req.Messages {
		items = append(items, queuerepo.EnqueueItem{Recipient: m.Recipient, Payload: m.Payload})
	}

	queued, skipped, err := h.service.EnqueueBatch(c.Request.Context(), h.cfg.Retry, items)
	if err != nil {
		zlog.Logger.Error().Err(err).Int("messages", len(items)).Msg("failed to enqueue batch")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, EnqueueResponse{
		Queued:            queued,
		Skipped:           len(skipped),
		SkippedRecipients: skipped,
	})
}

// Pending handles GET requests from the worker: it claims up to limit pending
// jobs, transitioning them to in_progress as a side effect.
func (h *Handler) Pending(c *ginext.Context) {
	limit := h.cfg.Queue.DefaultClaimLimit

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			zlog.Logger.Warn().Str("limit", raw).Msg("invalid limit parameter")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = n
	}

	if limit > h.cfg.Queue.MaxClaimLimit {
		limit = h.cfg.Queue.MaxClaimLimit
	}

	jobs, err := h.service.ClaimPending(c.Request.Context(), h.cfg.Retry, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to claim pending jobs")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if jobs == nil {
		jobs = []model.Job{}
	}

	respond.OK(c.Writer, jobs)
}

// StatusRequest represents the JSON body of a worker status callback.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=sent failed"`
	Error  string `json:"error"`
}

// ReportStatus handles POST requests recording a delivery outcome.
//
// A callback for a job that is no longer in_progress yields 409: that is a
// race with the stale sweep or a duplicate callback, and must not mutate state.
func (h *Handler) ReportStatus(c *ginext.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	rec, err := h.service.ReportStatus(c.Request.Context(), h.cfg.Retry, id, model.JobStatus(req.Status), req.Error)
	if err != nil {
		if errors.Is(err, queuerepo.ErrJobConflict) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("status callback for job not in progress")
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("job is not in progress"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to record job status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, rec)
}

// GetStatus handles GET requests for a single job's status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	status, err := h.service.GetJobStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, queuerepo.ErrNoJobsFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("job not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("job not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get job status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// Requeue handles POST requests that move a failed job back to pending.
// Re-queueing is an explicit operator action.
func (h *Handler) Requeue(c *ginext.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	err := h.service.RequeueJob(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, queuerepo.ErrJobConflict) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("requeue for job that is not failed")
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("job is not failed"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to requeue job")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "job requeued")
}

// List handles GET requests listing jobs by status for the dashboard.
func (h *Handler) List(c *ginext.Context) {
	raw := c.Query("status")
	status := model.JobStatus(raw)

	switch status {
	case model.StatusPending, model.StatusInProgress, model.StatusSent, model.StatusFailed:
	default:
		zlog.Logger.Warn().Str("status", raw).Msg("invalid status parameter")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid status"))
		return
	}

	jobs, err := h.service.ListByStatus(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, queuerepo.ErrNoJobsFound) {
			respond.OK(c.Writer, []model.Job{})
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to list jobs")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, jobs)
}

// Stats handles GET requests for aggregated per-status counts.
func (h *Handler) Stats(c *ginext.Context) {
	counts, err := h.service.Stats(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get queue stats")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, counts)
}

// GetReliability handles GET requests for a recipient's reliability record.
func (h *Handler) GetReliability(c *ginext.Context) {
	recipient := c.Param("recipient")
	if recipient == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing recipient"))
		return
	}

	rec, err := h.service.GetReliability(c.Request.Context(), recipient)
	if err != nil {
		if errors.Is(err, queuerepo.ErrRecipientNotFound) {
			zlog.Logger.Warn().Str("recipient", recipient).Msg("recipient not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("recipient not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("recipient", recipient).Msg("failed to get reliability record")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, rec)
}

// ResetReliability handles POST requests clearing a recipient's quarantine
// (operator override from the dashboard).
func (h *Handler) ResetReliability(c *ginext.Context) {
	recipient := c.Param("recipient")
	if recipient == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing recipient"))
		return
	}

	err := h.service.ResetReliability(c.Request.Context(), recipient)
	if err != nil {
		if errors.Is(err, queuerepo.ErrRecipientNotFound) {
			zlog.Logger.Warn().Str("recipient", recipient).Msg("recipient not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("recipient not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("recipient", recipient).Msg("failed to reset reliability record")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "reliability record reset")
}

func (h *Handler) jobID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}
