package cron

import (
	"time"

	"github.com/google/uuid"
)

// Task names the scheduler dispatches to the gateway.
const (
	TaskSyncPending  = "sync-pending"
	TaskDailySummary = "daily-summary"
)

// Schedule describes when a job runs: a cron expression (with seconds
// field), a fixed interval, or a single point in time.
type Schedule struct {
	Kind    string `json:"kind"` // "cron", "every" or "at"
	Expr    string `json:"expr,omitempty"`
	EveryMs int64  `json:"everyMs,omitempty"`
	AtMs    int64  `json:"atMs,omitempty"`
}

// Payload tells the handler what to do and where to deliver the result.
type Payload struct {
	Task    string `json:"task"`
	Deliver bool   `json:"deliver,omitempty"` // send the result over a channel
	Channel string `json:"channel,omitempty"`
	To      string `json:"to,omitempty"`
}

// JobState records the outcome of the last run.
type JobState struct {
	LastRunAtMs int64  `json:"lastRunAtMs,omitempty"`
	LastStatus  string `json:"lastStatus,omitempty"`
	LastError   string `json:"lastError,omitempty"`
}

// Job is one scheduled task.
type Job struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Enabled        bool     `json:"enabled"`
	DeleteAfterRun bool     `json:"deleteAfterRun,omitempty"`
	Schedule       Schedule `json:"schedule"`
	Payload        Payload  `json:"payload"`
	State          JobState `json:"state"`
	CreatedAtMs    int64    `json:"createdAtMs"`
}

func NewJob(name string, schedule Schedule, payload Payload) Job {
	return Job{
		ID:          uuid.NewString(),
		Name:        name,
		Enabled:     true,
		Schedule:    schedule,
		Payload:     payload,
		CreatedAtMs: time.Now().UnixMilli(),
	}
}
