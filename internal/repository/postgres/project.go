package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, name, description, semester_id, slack_channel_id, github_team_slug, github_repo, created_at`

func scanProject(row interface{ Scan(...any) error }) (*domain.Project, error) {
	p := &domain.Project{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.SemesterID, &p.SlackChannelID, &p.GithubTeamSlug, &p.GithubRepo, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, description, semester_id, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.SemesterID, time.Now())
	return mapInsertErr(err)
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *projectRepository) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = $1, description = $2, semester_id = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.SemesterID, p.ID)
	return err
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY name`
	return r.queryProjects(ctx, query)
}

func (r *projectRepository) ListUnprovisioned(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects p
	          WHERE (p.github_team_slug IS NULL OR p.github_repo IS NULL)
	            AND EXISTS (SELECT 1 FROM project_members m WHERE m.project_id = p.id)
	          ORDER BY p.created_at`
	return r.queryProjects(ctx, query)
}

func (r *projectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) AddMember(ctx context.Context, m *domain.ProjectMember) error {
	query := `INSERT INTO project_members (project_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, m.ProjectID, m.UserID, m.Role, time.Now())
	return mapInsertErr(err)
}

func (r *projectRepository) ListMembers(ctx context.Context, projectID string) ([]domain.ProjectMember, error) {
	query := `SELECT project_id, user_id, role, joined_at FROM project_members WHERE project_id = $1`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.ProjectMember
	for rows.Next() {
		var m domain.ProjectMember
		if err := rows.Scan(&m.ProjectID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// The Set* writers below are compare-and-swap persists: they only fill an
// unset column, so the first provisioner wins and later callers re-read.

func (r *projectRepository) SetSlackChannelID(ctx context.Context, projectID, channelID string) (bool, error) {
	return r.casColumn(ctx, `UPDATE projects SET slack_channel_id = $1 WHERE id = $2 AND slack_channel_id IS NULL`, channelID, projectID)
}

func (r *projectRepository) SetGithubTeamSlug(ctx context.Context, projectID, slug string) (bool, error) {
	return r.casColumn(ctx, `UPDATE projects SET github_team_slug = $1 WHERE id = $2 AND github_team_slug IS NULL`, slug, projectID)
}

func (r *projectRepository) SetGithubRepo(ctx context.Context, projectID, repo string) (bool, error) {
	return r.casColumn(ctx, `UPDATE projects SET github_repo = $1 WHERE id = $2 AND github_repo IS NULL`, repo, projectID)
}

func (r *projectRepository) casColumn(ctx context.Context, query, value, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
