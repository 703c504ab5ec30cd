package repository

import (
	"context"
	"errors"

	"clubhub-backend/internal/domain"
)

// ErrDuplicate is returned by inserts that hit a unique constraint. The
// decision workflow treats it as already-satisfied, not as a failure.
var ErrDuplicate = errors.New("row already exists")

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
	// SetSlackUserID caches a resolved chat user id onto the profile.
	SetSlackUserID(ctx context.Context, userID, slackUserID string) error
	List(ctx context.Context) ([]domain.Profile, error)
}

type RoleRepository interface {
	GetRole(ctx context.Context, userID string) (domain.Role, error)
	// SetRole writes the user's single role row (upsert).
	SetRole(ctx context.Context, userID string, role domain.Role) error
	ListByRole(ctx context.Context, role domain.Role) ([]domain.UserRole, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	// GetByID loads the application joined with its optional project or
	// class name.
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	// MarkDecided writes status, reviewed_by and reviewed_at in one
	// statement. This write is the decision's durability boundary.
	MarkDecided(ctx context.Context, id string, status domain.ApplicationStatus, reviewedBy string) error
	List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Project, error)
	// ListUnprovisioned returns projects that have members but still lack
	// a GitHub team or repository link.
	ListUnprovisioned(ctx context.Context) ([]domain.Project, error)

	AddMember(ctx context.Context, m *domain.ProjectMember) error
	ListMembers(ctx context.Context, projectID string) ([]domain.ProjectMember, error)

	// SetSlackChannelID persists a freshly created channel id only if the
	// column is still unset. Returns false when another writer won; the
	// caller re-reads and reuses the winner's channel.
	SetSlackChannelID(ctx context.Context, projectID, channelID string) (bool, error)
	SetGithubTeamSlug(ctx context.Context, projectID, slug string) (bool, error)
	SetGithubRepo(ctx context.Context, projectID, repo string) (bool, error)
}

type ClassRepository interface {
	Create(ctx context.Context, c *domain.Class) error
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	Update(ctx context.Context, c *domain.Class) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Class, error)

	AddEnrollment(ctx context.Context, e *domain.ClassEnrollment) error
	ListEnrollments(ctx context.Context, classID string) ([]domain.ClassEnrollment, error)

	SetSlackChannelID(ctx context.Context, classID, channelID string) (bool, error)
}

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Event, error)

	RecordAttendance(ctx context.Context, a *domain.EventAttendance) error
	ListAttendance(ctx context.Context, eventID string) ([]domain.EventAttendance, error)
}

type SemesterRepository interface {
	Create(ctx context.Context, s *domain.Semester) error
	GetByID(ctx context.Context, id string) (*domain.Semester, error)
	GetCurrent(ctx context.Context) (*domain.Semester, error)
	Update(ctx context.Context, s *domain.Semester) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Semester, error)
}

type OutboxRepository interface {
	// Enqueue inserts the task set for one decided application.
	Enqueue(ctx context.Context, tasks []domain.OutboxTask) error
	// ListPending returns pending tasks for one application in seq order.
	ListPending(ctx context.Context, applicationID string) ([]domain.OutboxTask, error)
	// ListPendingApplications returns application ids that still have
	// pending tasks, oldest first.
	ListPendingApplications(ctx context.Context, limit int32) ([]string, error)
	MarkDone(ctx context.Context, taskID int64) error
	// MarkFailed records one failed attempt. With final=true the task is
	// retired instead of staying pending for the retry job.
	MarkFailed(ctx context.Context, taskID int64, taskErr string, final bool) error
}
