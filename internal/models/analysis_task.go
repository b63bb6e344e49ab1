package models

import "time"

// Task type constants
const (
	TaskTypeHotspot      = "hotspot"
	TaskTypeDesiredAreas = "desired_areas"
)

// TaskStatus constants
const (
	TaskStatusPending   = "pending"
	TaskStatusRunning   = "running"
	TaskStatusCompleted = "completed"
	TaskStatusFailed    = "failed"
)

// AnalysisTask represents one hotspot or desired-area analysis run.
type AnalysisTask struct {
	ID int64 `json:"id" db:"id"`

	TaskType string `json:"task_type" db:"task_type"` // hotspot, desired_areas
	Carrier  string `json:"carrier" db:"carrier"`

	Status string `json:"status" db:"status"` // pending, running, completed, failed

	// ResultSummary is a JSON object with run statistics
	ResultSummary string `json:"result_summary,omitempty" db:"result_summary"`
	ErrorMessage  string `json:"error_message,omitempty" db:"error_message"`

	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	StartedAt   int64     `json:"started_at,omitempty" db:"started_at"`   // Unix timestamp
	CompletedAt int64     `json:"completed_at,omitempty" db:"completed_at"` // Unix timestamp
}
