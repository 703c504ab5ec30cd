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

type applicationService struct {
	appRepo     repository.ApplicationRepository
	profileRepo repository.ProfileRepository
	projectRepo repository.ProjectRepository
	classRepo   repository.ClassRepository
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	profileRepo repository.ProfileRepository,
	projectRepo repository.ProjectRepository,
	classRepo repository.ClassRepository,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		profileRepo: profileRepo,
		projectRepo: projectRepo,
		classRepo:   classRepo,
	}
}

func (s *applicationService) Submit(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	if _, err := s.profileRepo.GetByUserID(ctx, app.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: profile for user %s", ErrNotFound, app.UserID)
		}
		return nil, fmt.Errorf("failed to load applicant profile: %w", err)
	}

	switch app.ApplicationType {
	case domain.ApplicationTypeProject:
		if app.ProjectID == nil {
			return nil, fmt.Errorf("project application requires a project id")
		}
		if _, err := s.projectRepo.GetByID(ctx, *app.ProjectID); err != nil {
			return nil, fmt.Errorf("%w: project %s", ErrNotFound, *app.ProjectID)
		}
	case domain.ApplicationTypeClass:
		if app.ClassID == nil {
			return nil, fmt.Errorf("class application requires a class id")
		}
		if _, err := s.classRepo.GetByID(ctx, *app.ClassID); err != nil {
			return nil, fmt.Errorf("%w: class %s", ErrNotFound, *app.ClassID)
		}
	case domain.ApplicationTypeBoard, domain.ApplicationTypeClubAdmission:
		// No target to verify.
	default:
		return nil, fmt.Errorf("invalid application type %q", app.ApplicationType)
	}

	app.ID = uuid.NewString()
	app.Status = domain.ApplicationStatusPending
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

func (s *applicationService) Get(ctx context.Context, id string) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: application %s", ErrNotFound, id)
		}
		return nil, err
	}
	return app, nil
}

func (s *applicationService) List(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	return s.appRepo.List(ctx, status)
}
