package service

import (
	"context"
	"errors"

	"clubhub-backend/internal/domain"
)

var (
	// ErrUnauthorized covers missing identity and insufficient role; it is
	// returned before any mutation happens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound covers a missing application or an orphaned application
	// whose applicant profile is gone.
	ErrNotFound = errors.New("not found")
)

type DecisionService interface {
	// Decide converts one admin decision into a durable status change and
	// best-effort onboarding side effects. The returned message is safe to
	// show the caller once the status write has committed.
	Decide(ctx context.Context, callerID, applicationID string, status domain.ApplicationStatus) (string, error)
	// RunPendingTasks re-runs the pending onboarding tasks of one decided
	// application. Second trigger of the same fan-out, used by the
	// scheduler.
	RunPendingTasks(ctx context.Context, applicationID string) error
}

type ApplicationService interface {
	Submit(ctx context.Context, app *domain.Application) (*domain.Application, error)
	Get(ctx context.Context, id string) (*domain.Application, error)
	List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
}

type MemberService interface {
	ListMembers(ctx context.Context) ([]domain.Profile, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, domain.Role, error)
	GetRole(ctx context.Context, userID string) (domain.Role, error)
}

type DirectoryService interface {
	CreateProject(ctx context.Context, p *domain.Project) error
	GetProject(ctx context.Context, id string) (*domain.Project, []domain.ProjectMember, error)
	UpdateProject(ctx context.Context, p *domain.Project) error
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context) ([]domain.Project, error)

	CreateClass(ctx context.Context, c *domain.Class) error
	GetClass(ctx context.Context, id string) (*domain.Class, []domain.ClassEnrollment, error)
	UpdateClass(ctx context.Context, c *domain.Class) error
	DeleteClass(ctx context.Context, id string) error
	ListClasses(ctx context.Context) ([]domain.Class, error)

	CreateEvent(ctx context.Context, e *domain.Event) error
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	UpdateEvent(ctx context.Context, e *domain.Event) error
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context) ([]domain.Event, error)
	RecordAttendance(ctx context.Context, eventID, userID string) error
	ListAttendance(ctx context.Context, eventID string) ([]domain.EventAttendance, error)

	CreateSemester(ctx context.Context, s *domain.Semester) error
	GetSemester(ctx context.Context, id string) (*domain.Semester, error)
	UpdateSemester(ctx context.Context, s *domain.Semester) error
	DeleteSemester(ctx context.Context, id string) error
	ListSemesters(ctx context.Context) ([]domain.Semester, error)
}

type ProvisioningService interface {
	// BootstrapProjects runs the code-hosting bootstrap for every project
	// that has members but no team or repository link yet.
	BootstrapProjects(ctx context.Context) error
}

type EmailService interface {
	// SendDecisionEmail notifies the applicant of the outcome, templated
	// by application type.
	SendDecisionEmail(ctx context.Context, email, name string, app *domain.Application) error
}

// ChatClient is the chat-workspace provisioning adapter.
type ChatClient interface {
	LookupUserByEmail(ctx context.Context, email string) (string, error)
	InviteToWorkspace(ctx context.Context, email string) error
	CreateChannel(ctx context.Context, name string) (string, error)
	AddUserToChannel(ctx context.Context, channelID, slackUserID string) error
}

// CodeHostClient is the code-hosting provisioning adapter.
type CodeHostClient interface {
	EnsureTeam(ctx context.Context, name string) (string, error)
	AddTeamMember(ctx context.Context, teamSlug, username string) error
	EnsureRepo(ctx context.Context, name string) (string, error)
	GrantTeamRepoAccess(ctx context.Context, teamSlug, repo string) error
	SetBranchProtection(ctx context.Context, repo, branch string, teams, users []string) error
}
