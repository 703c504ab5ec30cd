package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, description, location, semester_id, starts_at, ends_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Name, e.Description, e.Location, e.SemesterID, e.StartsAt, e.EndsAt, time.Now())
	return mapInsertErr(err)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e := &domain.Event{}
	query := `SELECT id, name, description, location, semester_id, starts_at, ends_at, created_at FROM events WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.SemesterID, &e.StartsAt, &e.EndsAt, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET name = $1, description = $2, location = $3, semester_id = $4, starts_at = $5, ends_at = $6 WHERE id = $7`
	_, err := r.db.ExecContext(ctx, query, e.Name, e.Description, e.Location, e.SemesterID, e.StartsAt, e.EndsAt, e.ID)
	return err
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	return err
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT id, name, description, location, semester_id, starts_at, ends_at, created_at FROM events ORDER BY starts_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.SemesterID, &e.StartsAt, &e.EndsAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) RecordAttendance(ctx context.Context, a *domain.EventAttendance) error {
	query := `INSERT INTO event_attendance (event_id, user_id, recorded_at) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, a.EventID, a.UserID, time.Now())
	return mapInsertErr(err)
}

func (r *eventRepository) ListAttendance(ctx context.Context, eventID string) ([]domain.EventAttendance, error) {
	query := `SELECT event_id, user_id, recorded_at FROM event_attendance WHERE event_id = $1 ORDER BY recorded_at`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.EventAttendance
	for rows.Next() {
		var a domain.EventAttendance
		if err := rows.Scan(&a.EventID, &a.UserID, &a.RecordedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
