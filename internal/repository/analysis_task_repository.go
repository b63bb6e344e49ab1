package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/telcolab/coverage-backend-go/internal/models"
)

// AnalysisTaskRepository handles database operations for analysis tasks
type AnalysisTaskRepository struct {
	db *sql.DB
}

// NewAnalysisTaskRepository creates a new analysis task repository
func NewAnalysisTaskRepository(db *sql.DB) *AnalysisTaskRepository {
	return &AnalysisTaskRepository{db: db}
}

// Create inserts a pending task and returns its id
func (r *AnalysisTaskRepository) Create(ctx context.Context, taskType, carrier string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO analysis_tasks (task_type, carrier, status) VALUES (?, ?, ?)",
		taskType, carrier, models.TaskStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}
	return res.LastInsertId()
}

// MarkRunning marks a task as running
func (r *AnalysisTaskRepository) MarkRunning(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE analysis_tasks SET status = ?, started_at = ? WHERE id = ?",
		models.TaskStatusRunning, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark task as running: %w", err)
	}
	return nil
}

// MarkCompleted marks a task as completed with a summary JSON
func (r *AnalysisTaskRepository) MarkCompleted(ctx context.Context, id int64, summary string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE analysis_tasks SET status = ?, result_summary = ?, completed_at = ? WHERE id = ?",
		models.TaskStatusCompleted, summary, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark task as completed: %w", err)
	}
	return nil
}

// MarkFailed marks a task as failed with an error message
func (r *AnalysisTaskRepository) MarkFailed(ctx context.Context, id int64, msg string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE analysis_tasks SET status = ?, error_message = ?, completed_at = ? WHERE id = ?",
		models.TaskStatusFailed, msg, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark task as failed: %w", err)
	}
	return nil
}

// Get retrieves a task by id
func (r *AnalysisTaskRepository) Get(ctx context.Context, id int64) (*models.AnalysisTask, error) {
	var t models.AnalysisTask
	err := r.db.QueryRowContext(ctx, `
		SELECT id, task_type, carrier, status, result_summary, error_message,
			created_at, started_at, completed_at
		FROM analysis_tasks WHERE id = ?
	`, id).Scan(
		&t.ID, &t.TaskType, &t.Carrier, &t.Status, &t.ResultSummary, &t.ErrorMessage,
		&t.CreatedAt, &t.StartedAt, &t.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &t, nil
}
