package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, email, full_name, slack_user_id, github_username, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $6)`
	_, err := r.db.ExecContext(ctx, query, p.UserID, p.Email, p.FullName, p.SlackUserID, p.GithubUsername, time.Now())
	return mapInsertErr(err)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT user_id, email, full_name, slack_user_id, github_username, created_at, updated_at
	          FROM profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&p.UserID, &p.Email, &p.FullName, &p.SlackUserID, &p.GithubUsername, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT user_id, email, full_name, slack_user_id, github_username, created_at, updated_at
	          FROM profiles WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&p.UserID, &p.Email, &p.FullName, &p.SlackUserID, &p.GithubUsername, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET email = $1, full_name = $2, github_username = $3, updated_at = $4 WHERE user_id = $5`
	_, err := r.db.ExecContext(ctx, query, p.Email, p.FullName, p.GithubUsername, time.Now(), p.UserID)
	return err
}

func (r *profileRepository) SetSlackUserID(ctx context.Context, userID, slackUserID string) error {
	query := `UPDATE profiles SET slack_user_id = $1, updated_at = $2 WHERE user_id = $3`
	_, err := r.db.ExecContext(ctx, query, slackUserID, time.Now(), userID)
	return err
}

func (r *profileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT user_id, email, full_name, slack_user_id, github_username, created_at, updated_at
	          FROM profiles ORDER BY full_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.UserID, &p.Email, &p.FullName, &p.SlackUserID, &p.GithubUsername, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
