package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type roleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	var role domain.Role
	query := `SELECT role FROM user_roles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&role)
	if err != nil {
		return "", err
	}
	return role, nil
}

func (r *roleRepository) SetRole(ctx context.Context, userID string, role domain.Role) error {
	query := `INSERT INTO user_roles (user_id, role, updated_at) VALUES ($1, $2, $3)
	          ON CONFLICT (user_id) DO UPDATE SET role = $2, updated_at = $3`
	_, err := r.db.ExecContext(ctx, query, userID, role, time.Now())
	return err
}

func (r *roleRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.UserRole, error) {
	query := `SELECT user_id, role, updated_at FROM user_roles WHERE role = $1`
	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userRoles []domain.UserRole
	for rows.Next() {
		var ur domain.UserRole
		if err := rows.Scan(&ur.UserID, &ur.Role, &ur.UpdatedAt); err != nil {
			return nil, err
		}
		userRoles = append(userRoles, ur)
	}
	return userRoles, rows.Err()
}
