package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications
	          (id, user_id, application_type, status, project_id, class_id, board_position, project_role, class_role, note, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.UserID, app.ApplicationType, app.Status,
		app.ProjectID, app.ClassID, app.BoardPosition, app.ProjectRole, app.ClassRole, app.Note, time.Now())
	return mapInsertErr(err)
}

// GetByID loads the application together with the name of its optional
// project or class target.
func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	app := &domain.Application{}
	var targetName sql.NullString
	query := `SELECT a.id, a.user_id, a.application_type, a.status,
	                 a.project_id, a.class_id, a.board_position, a.project_role, a.class_role, a.note,
	                 a.reviewed_by, a.reviewed_at, a.created_at,
	                 COALESCE(p.name, c.name)
	          FROM applications a
	          LEFT JOIN projects p ON p.id = a.project_id
	          LEFT JOIN classes c ON c.id = a.class_id
	          WHERE a.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID, &app.UserID, &app.ApplicationType, &app.Status,
		&app.ProjectID, &app.ClassID, &app.BoardPosition, &app.ProjectRole, &app.ClassRole, &app.Note,
		&app.ReviewedBy, &app.ReviewedAt, &app.CreatedAt, &targetName)
	if err != nil {
		return nil, err
	}
	if targetName.Valid {
		app.TargetName = targetName.String
	}
	return app, nil
}

func (r *applicationRepository) MarkDecided(ctx context.Context, id string, status domain.ApplicationStatus, reviewedBy string) error {
	query := `UPDATE applications SET status = $1, reviewed_by = $2, reviewed_at = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, status, reviewedBy, time.Now(), id)
	return err
}

func (r *applicationRepository) List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	query := `SELECT id, user_id, application_type, status,
	                 project_id, class_id, board_position, project_role, class_role, note,
	                 reviewed_by, reviewed_at, created_at
	          FROM applications`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.ApplicationType, &app.Status,
			&app.ProjectID, &app.ClassID, &app.BoardPosition, &app.ProjectRole, &app.ClassRole, &app.Note,
			&app.ReviewedBy, &app.ReviewedAt, &app.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
