package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type decisionService struct {
	appRepo     repository.ApplicationRepository
	profileRepo repository.ProfileRepository
	roleRepo    repository.RoleRepository
	projectRepo repository.ProjectRepository
	classRepo   repository.ClassRepository
	outboxRepo  repository.OutboxRepository
	emailSvc    EmailService
	chat        ChatClient
	prov        *provisioner
}

func NewDecisionService(
	appRepo repository.ApplicationRepository,
	profileRepo repository.ProfileRepository,
	roleRepo repository.RoleRepository,
	projectRepo repository.ProjectRepository,
	classRepo repository.ClassRepository,
	outboxRepo repository.OutboxRepository,
	emailSvc EmailService,
	chat ChatClient,
	codeHost CodeHostClient,
	defaultBranch string,
) DecisionService {
	return &decisionService{
		appRepo:     appRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		projectRepo: projectRepo,
		classRepo:   classRepo,
		outboxRepo:  outboxRepo,
		emailSvc:    emailSvc,
		chat:        chat,
		prov:        newProvisioner(profileRepo, projectRepo, classRepo, chat, codeHost, defaultBranch),
	}
}

func (s *decisionService) Decide(ctx context.Context, callerID, applicationID string, status domain.ApplicationStatus) (string, error) {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return "", fmt.Errorf("invalid decision status %q", status)
	}

	// 1. The caller's role is checked at call time, before any mutation.
	callerRole, err := s.roleRepo.GetRole(ctx, callerID)
	if err != nil {
		return "", fmt.Errorf("%w: could not resolve caller role", ErrUnauthorized)
	}
	if !callerRole.CanReview() {
		return "", fmt.Errorf("%w: role %s may not review applications", ErrUnauthorized, callerRole)
	}

	// 2. Load the application with its optional target name.
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: application %s", ErrNotFound, applicationID)
		}
		return "", fmt.Errorf("failed to load application: %w", err)
	}

	// 3. An application without a profile is orphaned.
	profile, err := s.profileRepo.GetByUserID(ctx, app.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: profile for applicant %s", ErrNotFound, app.UserID)
		}
		return "", fmt.Errorf("failed to load applicant profile: %w", err)
	}

	// 4. Commit the decision. This write is the durability boundary: once
	// it succeeds the decision is made, whatever happens below.
	if err := s.appRepo.MarkDecided(ctx, app.ID, status, callerID); err != nil {
		return "", fmt.Errorf("failed to update application status: %w", err)
	}
	app.Status = status

	// 5. Enqueue the onboarding fan-out and run it once inline. Nothing
	// past this point may fail the operation.
	if err := s.outboxRepo.Enqueue(ctx, onboardingTasks(app)); err != nil {
		logger.ErrorContext(ctx, "Failed to enqueue onboarding tasks", "application_id", app.ID, "error", err)
	} else if err := s.RunPendingTasks(ctx, app.ID); err != nil {
		logger.ErrorContext(ctx, "Onboarding fan-out incomplete", "application_id", app.ID, "error", err)
	}

	if status == domain.ApplicationStatusAccepted {
		return fmt.Sprintf("Accepted application from %s", profile.FullName), nil
	}
	return fmt.Sprintf("Rejected application from %s", profile.FullName), nil
}

// onboardingTasks returns the ordered task set for one decided
// application. Acceptance of a project or class application gets the full
// onboarding sequence; everything else only notifies the applicant.
func onboardingTasks(app *domain.Application) []domain.OutboxTask {
	var kinds []domain.TaskKind
	if app.Status == domain.ApplicationStatusAccepted && app.HasRosterTarget() {
		kinds = []domain.TaskKind{
			domain.TaskRoleUpgrade,
			domain.TaskRosterInsert,
			domain.TaskChannelProvision,
			domain.TaskChatInvite,
		}
		if app.ApplicationType == domain.ApplicationTypeProject {
			kinds = append(kinds, domain.TaskGithubBootstrap)
		}
	}
	kinds = append(kinds, domain.TaskDecisionEmail)

	tasks := make([]domain.OutboxTask, 0, len(kinds))
	for i, kind := range kinds {
		tasks = append(tasks, domain.OutboxTask{
			ApplicationID: app.ID,
			Kind:          kind,
			Seq:           int32(i),
		})
	}
	return tasks
}
