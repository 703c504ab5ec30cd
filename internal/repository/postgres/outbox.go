package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type outboxRepository struct {
	db *sql.DB
}

func NewOutboxRepository(db *sql.DB) repository.OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) Enqueue(ctx context.Context, tasks []domain.OutboxTask) error {
	query := `INSERT INTO outbox_tasks (application_id, kind, seq, status, attempts, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, 0, $5, $5) RETURNING id`
	now := time.Now()
	for i := range tasks {
		t := &tasks[i]
		if err := r.db.QueryRowContext(ctx, query, t.ApplicationID, t.Kind, t.Seq, domain.TaskStatusPending, now).Scan(&t.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *outboxRepository) ListPending(ctx context.Context, applicationID string) ([]domain.OutboxTask, error) {
	query := `SELECT id, application_id, kind, seq, status, attempts, COALESCE(last_error, ''), created_at, updated_at
	          FROM outbox_tasks WHERE application_id = $1 AND status = $2 ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, applicationID, domain.TaskStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.OutboxTask
	for rows.Next() {
		var t domain.OutboxTask
		if err := rows.Scan(&t.ID, &t.ApplicationID, &t.Kind, &t.Seq, &t.Status, &t.Attempts, &t.LastError, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *outboxRepository) ListPendingApplications(ctx context.Context, limit int32) ([]string, error) {
	query := `SELECT application_id FROM outbox_tasks WHERE status = $1
	          GROUP BY application_id ORDER BY MIN(created_at) LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, domain.TaskStatusPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *outboxRepository) MarkDone(ctx context.Context, taskID int64) error {
	query := `UPDATE outbox_tasks SET status = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, domain.TaskStatusDone, time.Now(), taskID)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, taskID int64, taskErr string, final bool) error {
	// Non-final failures stay pending so the retry job picks them up
	// again; attempts and last_error record what happened.
	status := domain.TaskStatusPending
	if final {
		status = domain.TaskStatusFailed
	}
	query := `UPDATE outbox_tasks SET status = $1, attempts = attempts + 1, last_error = $2, updated_at = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, status, taskErr, time.Now(), taskID)
	return err
}
