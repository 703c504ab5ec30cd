package postgres

import (
	"context"
	"testing"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestProjectRepository_SetSlackChannelID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	t.Run("Won", func(t *testing.T) {
		mock.ExpectExec("UPDATE projects SET slack_channel_id").
			WithArgs("C100", "proj-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		won, err := repo.SetSlackChannelID(ctx, "proj-1", "C100")
		assert.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("LostToConcurrentWriter", func(t *testing.T) {
		// Column already set: the guarded update touches no rows.
		mock.ExpectExec("UPDATE projects SET slack_channel_id").
			WithArgs("C200", "proj-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		won, err := repo.SetSlackChannelID(ctx, "proj-1", "C200")
		assert.NoError(t, err)
		assert.False(t, won)
	})
}

func TestProjectRepository_AddMember(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO project_members").
			WithArgs("proj-1", "user-1", "member", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AddMember(ctx, &domain.ProjectMember{ProjectID: "proj-1", UserID: "user-1", Role: "member"})
		assert.NoError(t, err)
	})

	t.Run("DuplicateRow", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO project_members").
			WithArgs("proj-1", "user-1", "member", sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.AddMember(ctx, &domain.ProjectMember{ProjectID: "proj-1", UserID: "user-1", Role: "member"})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})
}

func TestProjectRepository_ListUnprovisioned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProjectRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "semester_id", "slack_channel_id", "github_team_slug", "github_repo", "created_at"}).
		AddRow("proj-1", "Rover", "", nil, "C100", nil, nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM projects p").
		WillReturnRows(rows)

	projects, err := repo.ListUnprovisioned(ctx)
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Nil(t, projects[0].GithubTeamSlug)
}
