package postgres

import (
	"database/sql"
	"errors"

	"clubhub-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProfileRepository
	repository.RoleRepository
	repository.ApplicationRepository
	repository.ProjectRepository
	repository.ClassRepository
	repository.EventRepository
	repository.SemesterRepository
	repository.OutboxRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ProfileRepository:     NewProfileRepository(db),
		RoleRepository:        NewRoleRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		ProjectRepository:     NewProjectRepository(db),
		ClassRepository:       NewClassRepository(db),
		EventRepository:       NewEventRepository(db),
		SemesterRepository:    NewSemesterRepository(db),
		OutboxRepository:      NewOutboxRepository(db),
	}
}

// mapInsertErr converts a unique-constraint violation into
// repository.ErrDuplicate so callers can treat it as already-satisfied.
func mapInsertErr(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}
