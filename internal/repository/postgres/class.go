package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type classRepository struct {
	db *sql.DB
}

func NewClassRepository(db *sql.DB) repository.ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, c *domain.Class) error {
	query := `INSERT INTO classes (id, name, description, semester_id, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Description, c.SemesterID, time.Now())
	return mapInsertErr(err)
}

func (r *classRepository) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	c := &domain.Class{}
	query := `SELECT id, name, description, semester_id, slack_channel_id, created_at FROM classes WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.SemesterID, &c.SlackChannelID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *classRepository) Update(ctx context.Context, c *domain.Class) error {
	query := `UPDATE classes SET name = $1, description = $2, semester_id = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Description, c.SemesterID, c.ID)
	return err
}

func (r *classRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	return err
}

func (r *classRepository) List(ctx context.Context) ([]domain.Class, error) {
	query := `SELECT id, name, description, semester_id, slack_channel_id, created_at FROM classes ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []domain.Class
	for rows.Next() {
		var c domain.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.SemesterID, &c.SlackChannelID, &c.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func (r *classRepository) AddEnrollment(ctx context.Context, e *domain.ClassEnrollment) error {
	query := `INSERT INTO class_enrollments (class_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, e.ClassID, e.UserID, e.Role, time.Now())
	return mapInsertErr(err)
}

func (r *classRepository) ListEnrollments(ctx context.Context, classID string) ([]domain.ClassEnrollment, error) {
	query := `SELECT class_id, user_id, role, joined_at FROM class_enrollments WHERE class_id = $1`
	rows, err := r.db.QueryContext(ctx, query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []domain.ClassEnrollment
	for rows.Next() {
		var e domain.ClassEnrollment
		if err := rows.Scan(&e.ClassID, &e.UserID, &e.Role, &e.JoinedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func (r *classRepository) SetSlackChannelID(ctx context.Context, classID, channelID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE classes SET slack_channel_id = $1 WHERE id = $2 AND slack_channel_id IS NULL`,
		channelID, classID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
