package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type semesterRepository struct {
	db *sql.DB
}

func NewSemesterRepository(db *sql.DB) repository.SemesterRepository {
	return &semesterRepository{db: db}
}

func (r *semesterRepository) Create(ctx context.Context, s *domain.Semester) error {
	query := `INSERT INTO semesters (id, name, start_date, end_date, current, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.StartDate, s.EndDate, s.Current, time.Now())
	return mapInsertErr(err)
}

func (r *semesterRepository) GetByID(ctx context.Context, id string) (*domain.Semester, error) {
	s := &domain.Semester{}
	query := `SELECT id, name, start_date, end_date, current, created_at FROM semesters WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Current, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *semesterRepository) GetCurrent(ctx context.Context) (*domain.Semester, error) {
	s := &domain.Semester{}
	query := `SELECT id, name, start_date, end_date, current, created_at FROM semesters WHERE current = true LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Current, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *semesterRepository) Update(ctx context.Context, s *domain.Semester) error {
	query := `UPDATE semesters SET name = $1, start_date = $2, end_date = $3, current = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.StartDate, s.EndDate, s.Current, s.ID)
	return err
}

func (r *semesterRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM semesters WHERE id = $1`, id)
	return err
}

func (r *semesterRepository) List(ctx context.Context) ([]domain.Semester, error) {
	query := `SELECT id, name, start_date, end_date, current, created_at FROM semesters ORDER BY start_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []domain.Semester
	for rows.Next() {
		var s domain.Semester
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Current, &s.CreatedAt); err != nil {
			return nil, err
		}
		semesters = append(semesters, s)
	}
	return semesters, rows.Err()
}
