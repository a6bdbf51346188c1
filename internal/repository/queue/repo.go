package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/acochrane/send-relay/internal/model"
)

var (
	// ErrJobConflict is returned when a status mutation targets a job that is
	// not in the state the mutation requires (duplicate callback, sweep race,
	// or a re-queue of a job that is not failed).
	ErrJobConflict = errors.New("job is not in a state that allows this transition")

	// ErrRecipientNotFound is returned when no reliability record exists for
	// the given recipient.
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrNoJobsFound is returned by listing queries that match nothing.
	ErrNoJobsFound = errors.New("no jobs found")
)

// EnqueueItem is one recipient/payload pair of an enqueue batch.
type EnqueueItem struct {
	Recipient string
	Payload   string
}

// Repository provides access to the send_queue and recipient_reliability tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new queue repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// EnqueueBatch inserts one pending job per item in a single transaction.
//
// Recipients whose reliability record is flagged unreachable are skipped
// atomically with the insert and returned in skipped.
func (r *Repository) EnqueueBatch(ctx context.Context, items []EnqueueItem) ([]uuid.UUID, []string, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin enqueue tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO send_queue (recipient, payload, status)
		SELECT $1, $2, 'pending'
		WHERE NOT EXISTS (
		    SELECT 1 FROM recipient_reliability
		    WHERE recipient = $1 AND unreachable
		)
		RETURNING id;
    `

	var (
		created []uuid.UUID
		skipped []string
	)

	for _, item := range items {
		var id uuid.UUID
		err := tx.QueryRowContext(ctx, query, item.Recipient, item.Payload).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			skipped = append(skipped, item.Recipient)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to enqueue job for %s: %w", item.Recipient, err)
		}

		created = append(created, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit enqueue tx: %w", err)
	}

	return created, skipped, nil
}

// ClaimBatch atomically transitions up to limit pending jobs to in_progress
// and returns them in creation order.
//
// FOR UPDATE SKIP LOCKED guarantees no two concurrent callers claim the same
// job. An empty slice means nothing is pending.
func (r *Repository) ClaimBatch(ctx context.Context, limit int) ([]model.Job, error) {
	query := `
		WITH claimed AS (
		    SELECT id FROM send_queue
		    WHERE status = 'pending'
		    ORDER BY created_at, id
		    LIMIT $1
		    FOR UPDATE SKIP LOCKED
		)
		UPDATE send_queue q
		SET status = 'in_progress',
		    attempts = q.attempts + 1,
		    last_attempt_at = now(),
		    updated_at = now()
		FROM claimed c
		WHERE q.id = c.id
		RETURNING q.id, q.recipient, q.payload, q.status, q.attempts, q.last_error,
		          q.created_at, q.updated_at, q.last_attempt_at;
    `

	// The claim is an UPDATE and must hit the master; db.QueryContext would
	// route it to a read replica when slaves are configured.
	rows, err := r.db.Master.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, err
	}

	// RETURNING gives no ordering guarantee; restore creation order.
	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].ID.String() < jobs[j].ID.String()
		}
		return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
	})

	return jobs, nil
}

// Complete records the outcome of an in_progress job and updates the
// recipient's reliability record in the same transaction.
//
// A sent outcome resets the consecutive-failure counter and clears the
// unreachable flag; a failed outcome increments the counter and sets
// unreachable once it reaches threshold. Completing a job that is not
// in_progress returns ErrJobConflict and leaves both tables untouched.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID, status model.JobStatus, errDetail *string, threshold int) (model.ReliabilityRecord, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.ReliabilityRecord{}, fmt.Errorf("begin complete tx: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE send_queue
		SET status = $2, last_error = $3, updated_at = now()
		WHERE id = $1 AND status = 'in_progress'
		RETURNING recipient;
    `

	var recipient string
	err = tx.QueryRowContext(ctx, updateQuery, id, status, errDetail).Scan(&recipient)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ReliabilityRecord{}, ErrJobConflict
	}
	if err != nil {
		return model.ReliabilityRecord{}, fmt.Errorf("failed to complete job: %w", err)
	}

	sent := status == model.StatusSent
	initialCount := 1
	if sent {
		initialCount = 0
	}

	upsertQuery := `
		INSERT INTO recipient_reliability (recipient, failure_count, unreachable, updated_at)
		VALUES ($1, $2, $2 >= $4, now())
		ON CONFLICT (recipient) DO UPDATE SET
		    failure_count = CASE WHEN $3 THEN 0 ELSE recipient_reliability.failure_count + 1 END,
		    unreachable   = CASE WHEN $3 THEN FALSE ELSE recipient_reliability.failure_count + 1 >= $4 END,
		    updated_at    = now()
		RETURNING recipient, failure_count, unreachable, updated_at;
    `

	var rec model.ReliabilityRecord
	err = tx.QueryRowContext(ctx, upsertQuery, recipient, initialCount, sent, threshold).
		Scan(&rec.Recipient, &rec.FailureCount, &rec.Unreachable, &rec.UpdatedAt)
	if err != nil {
		return model.ReliabilityRecord{}, fmt.Errorf("failed to update reliability record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.ReliabilityRecord{}, fmt.Errorf("commit complete tx: %w", err)
	}

	return rec, nil
}

// Requeue moves a failed job back to pending. The transition is guarded so a
// job cannot skip in_progress or be re-queued twice.
func (r *Repository) Requeue(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE send_queue
		SET status = 'pending', updated_at = now()
		WHERE id = $1 AND status = 'failed';
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to requeue job: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrJobConflict
	}

	return nil
}

// ReleaseStale returns in_progress jobs whose last claim predates cutoff back
// to pending, making them claimable again after a worker crash.
func (r *Repository) ReleaseStale(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE send_queue
		SET status = 'pending', updated_at = now()
		WHERE status = 'in_progress' AND last_attempt_at < $1;
    `

	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to release stale jobs: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows, nil
}

// GetJobStatusByID retrieves the status of a job by its ID.
func (r *Repository) GetJobStatusByID(ctx context.Context, id uuid.UUID) (model.JobStatus, error) {
	query := `
		SELECT status
		FROM send_queue
		WHERE id = $1;
    `

	var status model.JobStatus
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoJobsFound
		}

		return "", fmt.Errorf("failed to get job status: %w", err)
	}

	return status, nil
}

// ListByStatus retrieves all jobs with the given status in creation order.
func (r *Repository) ListByStatus(ctx context.Context, status model.JobStatus) ([]model.Job, error) {
	query := `
		SELECT id, recipient, payload, status, attempts, last_error,
		       created_at, updated_at, last_attempt_at
		FROM send_queue
		WHERE status = $1
		ORDER BY created_at, id;
    `

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 {
		return nil, ErrNoJobsFound
	}

	return jobs, nil
}

// CountByStatus returns aggregated job counts per status.
func (r *Repository) CountByStatus(ctx context.Context) (model.StatusCounts, error) {
	query := `
		SELECT status, COUNT(*)
		FROM send_queue
		GROUP BY status;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return model.StatusCounts{}, fmt.Errorf("failed to count jobs: %w", err)
	}
	defer rows.Close()

	var counts model.StatusCounts
	for rows.Next() {
		var (
			status model.JobStatus
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return model.StatusCounts{}, err
		}

		switch status {
		case model.StatusPending:
			counts.Pending = n
		case model.StatusInProgress:
			counts.InProgress = n
		case model.StatusSent:
			counts.Sent = n
		case model.StatusFailed:
			counts.Failed = n
		}
	}

	return counts, rows.Err()
}

// GetReliability retrieves the reliability record for a recipient.
func (r *Repository) GetReliability(ctx context.Context, recipient string) (model.ReliabilityRecord, error) {
	query := `
		SELECT recipient, failure_count, unreachable, updated_at
		FROM recipient_reliability
		WHERE recipient = $1;
    `

	var rec model.ReliabilityRecord
	err := r.db.QueryRowContext(ctx, query, recipient).
		Scan(&rec.Recipient, &rec.FailureCount, &rec.Unreachable, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReliabilityRecord{}, ErrRecipientNotFound
		}

		return model.ReliabilityRecord{}, fmt.Errorf("failed to get reliability record: %w", err)
	}

	return rec, nil
}

// ResetReliability clears the quarantine for a recipient: the failure counter
// goes back to zero and the unreachable flag is dropped.
func (r *Repository) ResetReliability(ctx context.Context, recipient string) error {
	query := `
		UPDATE recipient_reliability
		SET failure_count = 0, unreachable = FALSE, updated_at = now()
		WHERE recipient = $1;
    `

	res, err := r.db.ExecContext(ctx, query, recipient)
	if err != nil {
		return fmt.Errorf("failed to reset reliability record: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrRecipientNotFound
	}

	return nil
}

func scanJobs(rows *sql.Rows) ([]model.Job, error) {
	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		err := rows.Scan(
			&j.ID, &j.Recipient, &j.Payload, &j.Status, &j.Attempts, &j.LastError,
			&j.CreatedAt, &j.UpdatedAt, &j.LastAttemptAt,
		)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}
