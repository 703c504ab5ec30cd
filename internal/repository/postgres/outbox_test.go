package postgres

import (
	"context"
	"testing"
	"time"

	"clubhub-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_Enqueue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewOutboxRepository(db)
	ctx := context.Background()

	tasks := []domain.OutboxTask{
		{ApplicationID: "app-1", Kind: domain.TaskRoleUpgrade, Seq: 0},
		{ApplicationID: "app-1", Kind: domain.TaskDecisionEmail, Seq: 1},
	}

	mock.ExpectQuery("INSERT INTO outbox_tasks").
		WithArgs("app-1", domain.TaskRoleUpgrade, int32(0), domain.TaskStatusPending, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO outbox_tasks").
		WithArgs("app-1", domain.TaskDecisionEmail, int32(1), domain.TaskStatusPending, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	err = repo.Enqueue(ctx, tasks)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, int64(2), tasks[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewOutboxRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "application_id", "kind", "seq", "status", "attempts", "coalesce", "created_at", "updated_at"}).
		AddRow(1, "app-1", "role_upgrade", 0, "pending", 0, "", now, now).
		AddRow(2, "app-1", "decision_email", 1, "pending", 2, "timeout", now, now)

	mock.ExpectQuery("SELECT (.+) FROM outbox_tasks WHERE application_id").
		WithArgs("app-1", domain.TaskStatusPending).
		WillReturnRows(rows)

	tasks, err := repo.ListPending(ctx, "app-1")
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, domain.TaskRoleUpgrade, tasks[0].Kind)
	assert.Equal(t, int32(2), tasks[1].Attempts)
	assert.Equal(t, "timeout", tasks[1].LastError)
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewOutboxRepository(db)
	ctx := context.Background()

	t.Run("Retryable", func(t *testing.T) {
		mock.ExpectExec("UPDATE outbox_tasks SET status").
			WithArgs(domain.TaskStatusPending, "slack unreachable", sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkFailed(ctx, 7, "slack unreachable", false)
		assert.NoError(t, err)
	})

	t.Run("Final", func(t *testing.T) {
		mock.ExpectExec("UPDATE outbox_tasks SET status").
			WithArgs(domain.TaskStatusFailed, "slack unreachable", sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkFailed(ctx, 7, "slack unreachable", true)
		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
