package model

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of a queued send job.
//
// Transitions only move forward: pending -> in_progress -> sent|failed.
// A failed job may be re-queued back to pending by an explicit operator
// action; the stale-claim sweep moves in_progress back to pending.
type JobStatus string

const (
	StatusPending    JobStatus = "pending"
	StatusInProgress JobStatus = "in_progress"
	StatusSent       JobStatus = "sent"
	StatusFailed     JobStatus = "failed"
)

// Terminal reports whether the status is an end state of a delivery attempt.
func (s JobStatus) Terminal() bool {
	return s == StatusSent || s == StatusFailed
}

// Job represents one outbound message-send task in the queue.
type Job struct {
	ID            uuid.UUID  `json:"id"`              // unique identifier for the job
	Recipient     string     `json:"recipient"`       // digits-only number the message goes to
	Payload       string     `json:"payload"`         // message body, may embed a link
	Status        JobStatus  `json:"status"`          // current lifecycle state
	Attempts      int        `json:"attempts"`        // number of times the job was claimed
	LastError     *string    `json:"last_error,omitempty"`      // error detail of the last failed attempt
	CreatedAt     time.Time  `json:"created_at"`                // timestamp when the job was enqueued
	UpdatedAt     time.Time  `json:"updated_at"`                // timestamp of the last state change
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"` // timestamp of the last claim
}

// ReliabilityRecord tracks consecutive delivery failures per recipient.
//
// Unreachable is set once FailureCount reaches the configured threshold;
// any successful send resets the counter and clears the flag.
type ReliabilityRecord struct {
	Recipient    string    `json:"recipient"`
	FailureCount int       `json:"failure_count"`
	Unreachable  bool      `json:"unreachable"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StatusCounts holds aggregated queue counts per status for the dashboard.
type StatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Sent       int `json:"sent"`
	Failed     int `json:"failed"`
}
