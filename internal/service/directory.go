package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"

	"github.com/google/uuid"
)

// directoryService covers the dashboard CRUD surface: projects, classes,
// events and semesters.
type directoryService struct {
	projectRepo  repository.ProjectRepository
	classRepo    repository.ClassRepository
	eventRepo    repository.EventRepository
	semesterRepo repository.SemesterRepository
}

func NewDirectoryService(
	projectRepo repository.ProjectRepository,
	classRepo repository.ClassRepository,
	eventRepo repository.EventRepository,
	semesterRepo repository.SemesterRepository,
) DirectoryService {
	return &directoryService{
		projectRepo:  projectRepo,
		classRepo:    classRepo,
		eventRepo:    eventRepo,
		semesterRepo: semesterRepo,
	}
}

func notFoundOr(err error, what, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s %s", ErrNotFound, what, id)
	}
	return err
}

func (s *directoryService) CreateProject(ctx context.Context, p *domain.Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	p.ID = uuid.NewString()
	return s.projectRepo.Create(ctx, p)
}

func (s *directoryService) GetProject(ctx context.Context, id string) (*domain.Project, []domain.ProjectMember, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, notFoundOr(err, "project", id)
	}
	members, err := s.projectRepo.ListMembers(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list project members: %w", err)
	}
	return project, members, nil
}

func (s *directoryService) UpdateProject(ctx context.Context, p *domain.Project) error {
	return s.projectRepo.Update(ctx, p)
}

func (s *directoryService) DeleteProject(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}

func (s *directoryService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *directoryService) CreateClass(ctx context.Context, c *domain.Class) error {
	if c.Name == "" {
		return fmt.Errorf("class name is required")
	}
	c.ID = uuid.NewString()
	return s.classRepo.Create(ctx, c)
}

func (s *directoryService) GetClass(ctx context.Context, id string) (*domain.Class, []domain.ClassEnrollment, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, notFoundOr(err, "class", id)
	}
	enrollments, err := s.classRepo.ListEnrollments(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list class enrollments: %w", err)
	}
	return class, enrollments, nil
}

func (s *directoryService) UpdateClass(ctx context.Context, c *domain.Class) error {
	return s.classRepo.Update(ctx, c)
}

func (s *directoryService) DeleteClass(ctx context.Context, id string) error {
	return s.classRepo.Delete(ctx, id)
}

func (s *directoryService) ListClasses(ctx context.Context) ([]domain.Class, error) {
	return s.classRepo.List(ctx)
}

func (s *directoryService) CreateEvent(ctx context.Context, e *domain.Event) error {
	if e.Name == "" {
		return fmt.Errorf("event name is required")
	}
	if e.EndsAt.Before(e.StartsAt) {
		return fmt.Errorf("event ends before it starts")
	}
	e.ID = uuid.NewString()
	return s.eventRepo.Create(ctx, e)
}

func (s *directoryService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "event", id)
	}
	return event, nil
}

func (s *directoryService) UpdateEvent(ctx context.Context, e *domain.Event) error {
	return s.eventRepo.Update(ctx, e)
}

func (s *directoryService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}

func (s *directoryService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *directoryService) RecordAttendance(ctx context.Context, eventID, userID string) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return notFoundOr(err, "event", eventID)
	}
	err := s.eventRepo.RecordAttendance(ctx, &domain.EventAttendance{EventID: eventID, UserID: userID})
	// Checking in twice is not an error.
	if errors.Is(err, repository.ErrDuplicate) {
		return nil
	}
	return err
}

func (s *directoryService) ListAttendance(ctx context.Context, eventID string) ([]domain.EventAttendance, error) {
	return s.eventRepo.ListAttendance(ctx, eventID)
}

func (s *directoryService) CreateSemester(ctx context.Context, sem *domain.Semester) error {
	if sem.Name == "" {
		return fmt.Errorf("semester name is required")
	}
	sem.ID = uuid.NewString()
	return s.semesterRepo.Create(ctx, sem)
}

func (s *directoryService) GetSemester(ctx context.Context, id string) (*domain.Semester, error) {
	sem, err := s.semesterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "semester", id)
	}
	return sem, nil
}

func (s *directoryService) UpdateSemester(ctx context.Context, sem *domain.Semester) error {
	return s.semesterRepo.Update(ctx, sem)
}

func (s *directoryService) DeleteSemester(ctx context.Context, id string) error {
	return s.semesterRepo.Delete(ctx, id)
}

func (s *directoryService) ListSemesters(ctx context.Context) ([]domain.Semester, error) {
	return s.semesterRepo.List(ctx)
}
