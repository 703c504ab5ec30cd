package service

import (
	"context"

	"clubhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProfileRepo) SetSlackUserID(ctx context.Context, userID, slackUserID string) error {
	args := m.Called(ctx, userID, slackUserID)
	return args.Error(0)
}
func (m *MockProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Profile), args.Error(1)
}

// MockRoleRepo
type MockRoleRepo struct {
	mock.Mock
}

func (m *MockRoleRepo) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Role), args.Error(1)
}
func (m *MockRoleRepo) SetRole(ctx context.Context, userID string, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}
func (m *MockRoleRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.UserRole, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.UserRole), args.Error(1)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) MarkDecided(ctx context.Context, id string, status domain.ApplicationStatus, reviewedBy string) error {
	args := m.Called(ctx, id, status, reviewedBy)
	return args.Error(0)
}
func (m *MockApplicationRepo) List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Application), args.Error(1)
}

// MockProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProjectRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) ListUnprovisioned(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) AddMember(ctx context.Context, pm *domain.ProjectMember) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}
func (m *MockProjectRepo) ListMembers(ctx context.Context, projectID string) ([]domain.ProjectMember, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.ProjectMember), args.Error(1)
}
func (m *MockProjectRepo) SetSlackChannelID(ctx context.Context, projectID, channelID string) (bool, error) {
	args := m.Called(ctx, projectID, channelID)
	return args.Bool(0), args.Error(1)
}
func (m *MockProjectRepo) SetGithubTeamSlug(ctx context.Context, projectID, slug string) (bool, error) {
	args := m.Called(ctx, projectID, slug)
	return args.Bool(0), args.Error(1)
}
func (m *MockProjectRepo) SetGithubRepo(ctx context.Context, projectID, repo string) (bool, error) {
	args := m.Called(ctx, projectID, repo)
	return args.Bool(0), args.Error(1)
}

// MockClassRepo
type MockClassRepo struct {
	mock.Mock
}

func (m *MockClassRepo) Create(ctx context.Context, c *domain.Class) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClassRepo) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}
func (m *MockClassRepo) Update(ctx context.Context, c *domain.Class) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClassRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockClassRepo) List(ctx context.Context) ([]domain.Class, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Class), args.Error(1)
}
func (m *MockClassRepo) AddEnrollment(ctx context.Context, e *domain.ClassEnrollment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockClassRepo) ListEnrollments(ctx context.Context, classID string) ([]domain.ClassEnrollment, error) {
	args := m.Called(ctx, classID)
	return args.Get(0).([]domain.ClassEnrollment), args.Error(1)
}
func (m *MockClassRepo) SetSlackChannelID(ctx context.Context, classID, channelID string) (bool, error) {
	args := m.Called(ctx, classID, channelID)
	return args.Bool(0), args.Error(1)
}

// MockOutboxRepo
type MockOutboxRepo struct {
	mock.Mock
}

func (m *MockOutboxRepo) Enqueue(ctx context.Context, tasks []domain.OutboxTask) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}
func (m *MockOutboxRepo) ListPending(ctx context.Context, applicationID string) ([]domain.OutboxTask, error) {
	args := m.Called(ctx, applicationID)
	return args.Get(0).([]domain.OutboxTask), args.Error(1)
}
func (m *MockOutboxRepo) ListPendingApplications(ctx context.Context, limit int32) ([]string, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockOutboxRepo) MarkDone(ctx context.Context, taskID int64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}
func (m *MockOutboxRepo) MarkFailed(ctx context.Context, taskID int64, taskErr string, final bool) error {
	args := m.Called(ctx, taskID, taskErr, final)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendDecisionEmail(ctx context.Context, email, name string, app *domain.Application) error {
	args := m.Called(ctx, email, name, app)
	return args.Error(0)
}

// MockChatClient
type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) LookupUserByEmail(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}
func (m *MockChatClient) InviteToWorkspace(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
func (m *MockChatClient) CreateChannel(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}
func (m *MockChatClient) AddUserToChannel(ctx context.Context, channelID, slackUserID string) error {
	args := m.Called(ctx, channelID, slackUserID)
	return args.Error(0)
}

// MockCodeHostClient
type MockCodeHostClient struct {
	mock.Mock
}

func (m *MockCodeHostClient) EnsureTeam(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}
func (m *MockCodeHostClient) AddTeamMember(ctx context.Context, teamSlug, username string) error {
	args := m.Called(ctx, teamSlug, username)
	return args.Error(0)
}
func (m *MockCodeHostClient) EnsureRepo(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}
func (m *MockCodeHostClient) GrantTeamRepoAccess(ctx context.Context, teamSlug, repo string) error {
	args := m.Called(ctx, teamSlug, repo)
	return args.Error(0)
}
func (m *MockCodeHostClient) SetBranchProtection(ctx context.Context, repo, branch string, teams, users []string) error {
	args := m.Called(ctx, repo, branch, teams, users)
	return args.Error(0)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEventRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEventRepo) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) RecordAttendance(ctx context.Context, a *domain.EventAttendance) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockEventRepo) ListAttendance(ctx context.Context, eventID string) ([]domain.EventAttendance, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.EventAttendance), args.Error(1)
}

// MockSemesterRepo
type MockSemesterRepo struct {
	mock.Mock
}

func (m *MockSemesterRepo) Create(ctx context.Context, s *domain.Semester) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSemesterRepo) GetByID(ctx context.Context, id string) (*domain.Semester, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Semester), args.Error(1)
}
func (m *MockSemesterRepo) GetCurrent(ctx context.Context) (*domain.Semester, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Semester), args.Error(1)
}
func (m *MockSemesterRepo) Update(ctx context.Context, s *domain.Semester) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSemesterRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSemesterRepo) List(ctx context.Context) ([]domain.Semester, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Semester), args.Error(1)
}
